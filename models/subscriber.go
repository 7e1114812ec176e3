package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Subscriber is a newsletter signup, separate from User accounts
type Subscriber struct {
	gorm.Model
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Preferences datatypes.JSON `json:"preferences"`
	Active      bool           `json:"active" gorm:"default:true"`
}
