package models

import "gorm.io/gorm"

// Subscription tiers with their monthly AI credit allowance
const (
	TierFree         = "free"
	TierExplorer     = "explorer"
	TierGlobetrotter = "globetrotter"
)

var TierCredits = map[string]int{
	TierFree:         10,
	TierExplorer:     100,
	TierGlobetrotter: 1000,
}

type User struct {
	gorm.Model
	Email     string  `json:"email" gorm:"uniqueIndex;not null"`
	Password  string  `json:"-"`
	Name      string  `json:"name"`
	Tier      string  `json:"tier" gorm:"type:varchar(20);default:free"`
	AICredits int     `json:"ai_credits" gorm:"default:10"`
	Role      string  `json:"role" gorm:"default:user"`
	Confirmed bool    `json:"confirmed" gorm:"default:false"`
	GoogleID  *string `json:"-" gorm:"uniqueIndex"`
	// free-text travel preference strings, used by deal personalization
	Preferences string `json:"preferences" gorm:"type:text"`
}
