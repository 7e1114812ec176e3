package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wizardRouter(userID uint) *gin.Engine {
	r := gin.New()
	wc := NewWizardController(services.NewCalendarService(), services.NewFlightsService(&config.Config{}))
	r.POST("/api/weekend-wizard", authAs(userID), wc.FindWeekend)
	return r
}

func TestWeekendWizardWithBodyIntervals(t *testing.T) {
	setupTestDB(t)
	r := wizardRouter(1)

	w := performJSON(r, "POST", "/api/weekend-wizard", gin.H{
		"busy_intervals": []gin.H{},
	})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	require.NotNil(t, result["weekend"])
	assert.Equal(t, false, result["calendar_used"])

	weekend := result["weekend"].(map[string]interface{})
	start, err := time.Parse(time.RFC3339, weekend["start"].(string))
	require.NoError(t, err)
	assert.Equal(t, time.Friday, start.Weekday())
	assert.Equal(t, 72.0, weekend["free_hours"])
}

func TestWeekendWizardSkipsBusyWeekend(t *testing.T) {
	setupTestDB(t)
	r := wizardRouter(1)

	// block out the next two months solid, push the result past them
	now := time.Now().UTC()
	w := performJSON(r, "POST", "/api/weekend-wizard", gin.H{
		"busy_intervals": []gin.H{
			{"start": now.Format(time.RFC3339), "end": now.AddDate(0, 2, 0).Format(time.RFC3339)},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	require.NotNil(t, result["weekend"])

	weekend := result["weekend"].(map[string]interface{})
	start, err := time.Parse(time.RFC3339, weekend["start"].(string))
	require.NoError(t, err)
	assert.True(t, start.After(now.AddDate(0, 2, -3)))
}

func TestWeekendWizardAttachesFlightEstimates(t *testing.T) {
	setupTestDB(t)
	r := wizardRouter(1)

	// no SerpAPI key configured, so quotes come from the estimator
	w := performJSON(r, "POST", "/api/weekend-wizard", gin.H{
		"origin":      "lis",
		"destination": "KIX",
	})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	require.NotNil(t, result["weekend"])

	quotes := result["flights"].([]interface{})
	require.NotEmpty(t, quotes)
	first := quotes[0].(map[string]interface{})
	assert.Equal(t, true, first["estimated"])
	assert.Greater(t, first["price"].(float64), 0.0)
}

func TestWeekendWizardRequiresAuth(t *testing.T) {
	setupTestDB(t)
	r := wizardRouter(0)

	w := performJSON(r, "POST", "/api/weekend-wizard", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
