package services

import (
	"encoding/json"
	"log"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalyticsService stores capture events locally; the PostHog forward is
// log-only until the project key is provisioned
type AnalyticsService struct {
	db          *gorm.DB
	posthogKey  string
	posthogHost string
}

func NewAnalyticsService(db *gorm.DB, cfg *config.Config) *AnalyticsService {
	return &AnalyticsService{
		db:          db,
		posthogKey:  cfg.PostHogAPIKey,
		posthogHost: cfg.PostHogHost,
	}
}

func (a *AnalyticsService) Capture(name string, userID *uint, properties map[string]interface{}) (*models.AnalyticsEvent, error) {
	props, err := json.Marshal(properties)
	if err != nil {
		return nil, err
	}

	event := &models.AnalyticsEvent{
		EventID:    uuid.NewString(),
		Name:       name,
		UserID:     userID,
		Properties: datatypes.JSON(props),
	}
	if err := a.db.Create(event).Error; err != nil {
		return nil, err
	}

	log.Printf("[analytics] host=%s event=%s id=%s", a.posthogHost, name, event.EventID)
	return event, nil
}
