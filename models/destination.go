package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Budget tiers are coarse price buckets attached to a destination
const (
	BudgetFriendly = "budget-friendly"
	BudgetMidRange = "mid-range"
	BudgetLuxury   = "luxury"
)

func ValidBudgetTier(t string) bool {
	switch t {
	case BudgetFriendly, BudgetMidRange, BudgetLuxury:
		return true
	}
	return false
}

type Destination struct {
	gorm.Model
	Name        string         `json:"name" gorm:"type:varchar(255);not null"`
	Slug        string         `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Country     string         `json:"country" gorm:"type:varchar(100);index"`
	Continent   string         `json:"continent" gorm:"type:varchar(50);index"`
	Description string         `json:"description" gorm:"type:text"`
	Highlights  datatypes.JSON `json:"highlights"`
	Images      datatypes.JSON `json:"images"`
	BudgetTier  string         `json:"budget_tier" gorm:"type:varchar(20);index"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	BestSeason  string         `json:"best_season" gorm:"type:varchar(50)"`
	Rating      float64        `json:"rating" gorm:"default:0"`
	// rough daily spend in USD, used as the base for itinerary budgets
	DailyCost float64 `json:"daily_cost"`
}
