package models

import (
	"time"

	"gorm.io/gorm"
)

// Deal types carry a weight in the scoring formula
const (
	DealFlash     = "flash_sale"
	DealSeasonal  = "seasonal"
	DealLastMin   = "last_minute"
	DealEarlyBird = "early_bird"
)

// Deal is a simulated price-drop record attached to an itinerary
type Deal struct {
	gorm.Model
	ItineraryID    uint      `json:"itinerary_id" gorm:"not null;index"`
	OriginalPrice  float64   `json:"original_price"`
	NewPrice       float64   `json:"new_price"`
	SavingsAmount  float64   `json:"savings_amount"`
	SavingsPercent float64   `json:"savings_percent"`
	DealType       string    `json:"deal_type" gorm:"type:varchar(30)"`
	Score          float64   `json:"score"`
	ExpiresAt      time.Time `json:"expires_at"`
	Insight        string    `json:"insight" gorm:"type:text"`
}
