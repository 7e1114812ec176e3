package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sishir120/PackYourBags-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const seedCatalog = `[
  {"name": "Kyoto", "slug": "kyoto", "country": "Japan", "continent": "Asia", "budget_tier": "mid-range", "rating": 4.8},
  {"name": "Hoi An Old Town", "country": "Vietnam", "continent": "Asia", "budget_tier": "budget-friendly"},
  {"name": "Banff", "slug": "banff", "country": "Canada", "continent": "North America", "budget_tier": "five-star"}
]`

func seederTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "destinations.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedDestinationsIsIdempotent(t *testing.T) {
	db := seederTestDB(t)
	path := writeCatalog(t, seedCatalog)

	require.NoError(t, SeedDestinations(db, path))

	var count int64
	db.Model(&models.Destination{}).Count(&count)
	require.Equal(t, int64(3), count)

	// a second pass over the same catalog adds nothing
	require.NoError(t, SeedDestinations(db, path))
	db.Model(&models.Destination{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestSeedDestinationsFillsSlugAndTier(t *testing.T) {
	db := seederTestDB(t)
	path := writeCatalog(t, seedCatalog)

	require.NoError(t, SeedDestinations(db, path))

	var hoiAn models.Destination
	require.NoError(t, db.Where("name = ?", "Hoi An Old Town").First(&hoiAn).Error)
	assert.Equal(t, "hoi-an-old-town", hoiAn.Slug)

	// unknown budget tiers fall back to mid-range
	var banff models.Destination
	require.NoError(t, db.Where("slug = ?", "banff").First(&banff).Error)
	assert.Equal(t, models.BudgetMidRange, banff.BudgetTier)
}

func TestSeedDestinationsMissingFileIsFine(t *testing.T) {
	db := seederTestDB(t)
	require.NoError(t, SeedDestinations(db, filepath.Join(t.TempDir(), "nope.json")))

	var count int64
	db.Model(&models.Destination{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSeedDestinationsRejectsBadJSON(t *testing.T) {
	db := seederTestDB(t)
	path := writeCatalog(t, "{not json")
	assert.Error(t, SeedDestinations(db, path))
}
