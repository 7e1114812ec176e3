package models

import (
	"time"

	"gorm.io/gorm"
)

type PriceWatch struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"not null;index"`
	Destination string `json:"destination" gorm:"type:varchar(255);not null"`
	// departure IATA code; empty means the configured home airport
	Origin      string  `json:"origin" gorm:"type:varchar(8)"`
	LastPrice   float64 `json:"last_price"`
	TargetPrice float64 `json:"target_price"`
	// notify when the price drops by at least this percent
	PercentDrop float64    `json:"percent_drop" gorm:"default:10"`
	MuteUntil   *time.Time `json:"mute_until"`
	Active      bool       `json:"active" gorm:"default:true;index"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// Muted reports whether notifications are currently suppressed
func (pw *PriceWatch) Muted(now time.Time) bool {
	return pw.MuteUntil != nil && now.Before(*pw.MuteUntil)
}
