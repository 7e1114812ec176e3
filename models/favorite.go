package models

import "gorm.io/gorm"

// Favorite joins a user to a destination, one row per pair
type Favorite struct {
	gorm.Model
	UserID        uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_destination"`
	DestinationID uint `json:"destination_id" gorm:"not null;uniqueIndex:idx_user_destination"`

	User        User        `json:"-" gorm:"foreignKey:UserID"`
	Destination Destination `json:"destination" gorm:"foreignKey:DestinationID"`
}
