package database

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedDestination mirrors one entry of the legacy destinations.json catalog
type seedDestination struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Country     string   `json:"country"`
	Continent   string   `json:"continent"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Images      []string `json:"images"`
	BudgetTier  string   `json:"budget_tier"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	BestSeason  string   `json:"best_season"`
	Rating      float64  `json:"rating"`
	DailyCost   float64  `json:"daily_cost"`
}

// SeedDestinations loads the legacy JSON catalog and inserts destinations that
// are not present yet. Matching is by slug, so re-running never duplicates.
func SeedDestinations(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // no catalog file, nothing to seed
		}
		return err
	}

	var entries []seedDestination
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse %s: %v", path, err)
	}

	for _, e := range entries {
		slug := e.Slug
		if slug == "" {
			slug = utils.Slugify(e.Name)
		}
		if slug == "" {
			continue
		}

		var count int64
		if err := db.Model(&models.Destination{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		tier := e.BudgetTier
		if !models.ValidBudgetTier(tier) {
			tier = models.BudgetMidRange
		}

		highlights, _ := json.Marshal(e.Highlights)
		images, _ := json.Marshal(e.Images)

		dest := models.Destination{
			Name:        e.Name,
			Slug:        slug,
			Country:     e.Country,
			Continent:   e.Continent,
			Description: e.Description,
			Highlights:  datatypes.JSON(highlights),
			Images:      datatypes.JSON(images),
			BudgetTier:  tier,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			BestSeason:  e.BestSeason,
			Rating:      e.Rating,
			DailyCost:   e.DailyCost,
		}
		if err := db.Create(&dest).Error; err != nil {
			return err
		}
	}
	return nil
}
