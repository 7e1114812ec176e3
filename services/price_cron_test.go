package services

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/database"
	"github.com/Sishir120/PackYourBags-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func cronTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cron.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRefreshPriceWatchesUpdatesLastPrice(t *testing.T) {
	db := cronTestDB(t)
	require.NoError(t, db.Create(&models.PriceWatch{
		UserID:      1,
		Destination: "KIX",
		PercentDrop: 10,
		Active:      true,
	}).Error)

	flights := NewFlightsService(&config.Config{})
	RefreshPriceWatches(db, flights, NewNotifyService(&config.Config{}), "JFK")

	var watch models.PriceWatch
	require.NoError(t, db.First(&watch).Error)
	assert.Greater(t, watch.LastPrice, 0.0)

	// the estimator is deterministic, so a second pass keeps the same price
	first := watch.LastPrice
	RefreshPriceWatches(db, flights, NewNotifyService(&config.Config{}), "JFK")
	require.NoError(t, db.First(&watch).Error)
	assert.Equal(t, first, watch.LastPrice)
}

func TestRefreshPriceWatchesClearsExpiredMutes(t *testing.T) {
	db := cronTestDB(t)
	past := time.Now().AddDate(0, 0, -1)
	require.NoError(t, db.Create(&models.PriceWatch{
		UserID:      1,
		Destination: "LIS",
		PercentDrop: 10,
		MuteUntil:   &past,
		Active:      true,
	}).Error)

	RefreshPriceWatches(db, NewFlightsService(&config.Config{}), NewNotifyService(&config.Config{}), "JFK")

	var watch models.PriceWatch
	require.NoError(t, db.First(&watch).Error)
	assert.Nil(t, watch.MuteUntil)
}

func TestRefreshPriceWatchesSkipsInactive(t *testing.T) {
	db := cronTestDB(t)
	require.NoError(t, db.Create(&models.PriceWatch{
		UserID:      1,
		Destination: "CUZ",
		PercentDrop: 10,
		Active:      true,
	}).Error)
	require.NoError(t, db.Model(&models.PriceWatch{}).Where("user_id = ?", 1).Update("active", false).Error)

	RefreshPriceWatches(db, NewFlightsService(&config.Config{}), NewNotifyService(&config.Config{}), "JFK")

	var watch models.PriceWatch
	require.NoError(t, db.First(&watch).Error)
	assert.Equal(t, 0.0, watch.LastPrice)
}

func TestRefreshPriceWatchesSendsDepartureToProvider(t *testing.T) {
	db := cronTestDB(t)
	require.NoError(t, db.Create(&models.PriceWatch{
		UserID:      1,
		Destination: "KIX",
		Origin:      "LIS",
		PercentDrop: 10,
		Active:      true,
	}).Error)
	require.NoError(t, db.Create(&models.PriceWatch{
		UserID:      2,
		Destination: "CUZ",
		PercentDrop: 10,
		Active:      true,
	}).Error)

	var departures []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dep := r.URL.Query().Get("departure_id")
		if dep == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		departures = append(departures, dep)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"best_flights": [{"price": 512, "total_duration": 400, "flights": [{"airline": "TAP"}]}]}`))
	}))
	defer server.Close()

	flights := NewFlightsService(&config.Config{SerpAPIKey: "test-key", SerpAPIBaseURL: server.URL})
	RefreshPriceWatches(db, flights, NewNotifyService(&config.Config{}), "JFK")

	// the watch's own origin wins, the home airport fills the gap
	assert.ElementsMatch(t, []string{"LIS", "JFK"}, departures)

	var watches []models.PriceWatch
	require.NoError(t, db.Order("user_id").Find(&watches).Error)
	for _, w := range watches {
		assert.Equal(t, 512.0, w.LastPrice)
	}
}
