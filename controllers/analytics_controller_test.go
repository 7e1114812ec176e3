package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/middleware"
	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/services"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// analyticsRouter wires the track route exactly as the production router does:
// optional auth, anonymous requests pass through
func analyticsRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ac := NewAnalyticsController(services.NewAnalyticsService(db, &config.Config{}))
	r.POST("/api/analytics/track", middleware.OptionalJWTAuth(), ac.Track)
	return r
}

func performJSONWithToken(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyticsTrackAnonymous(t *testing.T) {
	db := setupTestDB(t)
	r := analyticsRouter(db)

	w := performJSON(r, "POST", "/api/analytics/track", gin.H{
		"name":       "destination_viewed",
		"properties": gin.H{"slug": "kyoto"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	assert.NotEmpty(t, result["event_id"])

	var event models.AnalyticsEvent
	require.NoError(t, db.First(&event).Error)
	assert.Equal(t, "destination_viewed", event.Name)
	assert.Nil(t, event.UserID)
	assert.Contains(t, string(event.Properties), "kyoto")
}

func TestAnalyticsTrackAttachesUserFromBearerToken(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	r := analyticsRouter(db)

	token, err := utils.GenerateJWT(42, "user", "test-secret")
	require.NoError(t, err)

	w := performJSONWithToken(r, "POST", "/api/analytics/track", token, gin.H{"name": "wizard_run"})
	require.Equal(t, http.StatusCreated, w.Code)

	var event models.AnalyticsEvent
	require.NoError(t, db.First(&event).Error)
	require.NotNil(t, event.UserID)
	assert.Equal(t, uint(42), *event.UserID)
}

func TestAnalyticsTrackIgnoresBadToken(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	r := analyticsRouter(db)

	// a garbage token never blocks tracking, the event just stays anonymous
	w := performJSONWithToken(r, "POST", "/api/analytics/track", "not-a-jwt", gin.H{"name": "page_view"})
	require.Equal(t, http.StatusCreated, w.Code)

	var event models.AnalyticsEvent
	require.NoError(t, db.First(&event).Error)
	assert.Nil(t, event.UserID)
}

func TestAnalyticsTrackRequiresName(t *testing.T) {
	db := setupTestDB(t)
	r := analyticsRouter(db)

	w := performJSON(r, "POST", "/api/analytics/track", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
