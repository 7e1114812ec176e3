package database

import (
	"github.com/Sishir120/PackYourBags-sub000/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Destination{},
		&models.Blog{},
		&models.Subscriber{},
		&models.Itinerary{},
		&models.Favorite{},
		&models.PriceWatch{},
		&models.Deal{},
		&models.AnalyticsEvent{},
	)
}
