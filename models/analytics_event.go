package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalyticsEvent is a locally stored capture event (PostHog forward is log-only)
type AnalyticsEvent struct {
	gorm.Model
	EventID    string         `json:"event_id" gorm:"type:varchar(36);uniqueIndex"`
	Name       string         `json:"name" gorm:"type:varchar(100);not null;index"`
	UserID     *uint          `json:"user_id" gorm:"index"`
	Properties datatypes.JSON `json:"properties"`
}
