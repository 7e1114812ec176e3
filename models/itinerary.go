package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Itinerary struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"not null;index"`
	DestinationID *uint      `json:"destination_id" gorm:"index"`
	Title         string     `json:"title" gorm:"type:varchar(255);not null"`
	StartDate     *time.Time `json:"start_date"`
	NumDays       int        `json:"num_days" gorm:"default:1"`
	// day-by-day activities as a JSON blob: [{"day":1,"activities":[...]}, ...]
	Days            datatypes.JSON `json:"days"`
	EstimatedBudget float64        `json:"estimated_budget"`
	ShareToken      string         `json:"share_token" gorm:"type:varchar(64);uniqueIndex"`
	Public          bool           `json:"public" gorm:"default:false"`

	User        User         `json:"-" gorm:"foreignKey:UserID"`
	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
	Deals       []Deal       `json:"deals,omitempty" gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}
