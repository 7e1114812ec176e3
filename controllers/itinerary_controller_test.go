package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itineraryRouter(userID uint) *gin.Engine {
	r := gin.New()
	tracker := services.NewTrackerService(services.NewAIService(&config.Config{}))
	ic := NewItineraryController(tracker)
	auth := r.Group("/api", authAs(userID))
	auth.POST("/itineraries", ic.Create)
	auth.GET("/itineraries", ic.List)
	auth.GET("/itineraries/:id", ic.Get)
	auth.PUT("/itineraries/:id", ic.Update)
	auth.DELETE("/itineraries/:id", ic.Delete)
	auth.GET("/itineraries/:id/pdf", ic.DownloadPDF)
	auth.POST("/itineraries/:id/deals", ic.CheckDeals)
	auth.GET("/itineraries/:id/deals", ic.ListDeals)
	r.GET("/api/shared/:token", ic.GetShared)
	return r
}

func createItinerary(t *testing.T, r *gin.Engine, body gin.H) map[string]interface{} {
	t.Helper()
	w := performJSON(r, "POST", "/api/itineraries", body)
	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeResult(t, w)
	return env["result"].(map[string]interface{})
}

func TestItineraryCreateAssignsShareToken(t *testing.T) {
	setupTestDB(t)
	r := itineraryRouter(1)

	result := createItinerary(t, r, gin.H{
		"title": "Weekend in Lisbon",
		"days": []gin.H{
			{"day": 1, "activities": []string{"Alfama walk", "Fado night"}},
			{"day": 2, "activities": []string{"Belem pastries"}},
		},
		"estimated_budget": 900,
	})
	assert.NotEmpty(t, result["share_token"])
	assert.Equal(t, float64(2), result["num_days"])
}

func TestItineraryOwnerScoping(t *testing.T) {
	setupTestDB(t)
	owner := itineraryRouter(1)
	other := itineraryRouter(2)

	result := createItinerary(t, owner, gin.H{"title": "Solo trip"})
	id := int(result["id"].(float64))

	w := performJSON(other, "GET", fmt.Sprintf("/api/itineraries/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(owner, "GET", fmt.Sprintf("/api/itineraries/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(other, "GET", "/api/itineraries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	assert.Empty(t, env["result"])
}

func TestItinerarySharedLinkRespectsVisibility(t *testing.T) {
	setupTestDB(t)
	r := itineraryRouter(1)

	private := createItinerary(t, r, gin.H{"title": "Private"})
	public := createItinerary(t, r, gin.H{"title": "Public", "public": true})

	w := performJSON(r, "GET", "/api/shared/"+private["share_token"].(string), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(r, "GET", "/api/shared/"+public["share_token"].(string), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	result := env["result"].(map[string]interface{})
	assert.Equal(t, "Public", result["title"])
}

func TestItineraryPDFDownload(t *testing.T) {
	setupTestDB(t)
	r := itineraryRouter(1)

	result := createItinerary(t, r, gin.H{
		"title": "Kyoto Week",
		"days":  []gin.H{{"day": 1, "activities": []string{"Fushimi Inari"}}},
	})
	id := int(result["id"].(float64))

	w := performJSON(r, "GET", fmt.Sprintf("/api/itineraries/%d/pdf", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, w.Body.Len() > 0)
}

func TestCheckDealsRequiresBudget(t *testing.T) {
	setupTestDB(t)
	r := itineraryRouter(1)

	result := createItinerary(t, r, gin.H{"title": "No budget"})
	id := int(result["id"].(float64))

	w := performJSON(r, "POST", fmt.Sprintf("/api/itineraries/%d/deals", id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckDealsPersistsAndLists(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{Email: "u@example.com", Tier: models.TierFree, Preferences: "budget traveler"}).Error)
	r := itineraryRouter(1)

	result := createItinerary(t, r, gin.H{"title": "Deal hunt", "estimated_budget": 1000})
	id := int(result["id"].(float64))

	// the simulated price lands below budget often enough that a handful of
	// passes reliably produces at least one deal
	var created bool
	for i := 0; i < 40 && !created; i++ {
		w := performJSON(r, "POST", fmt.Sprintf("/api/itineraries/%d/deals", id), nil)
		switch w.Code {
		case http.StatusCreated:
			created = true
			env := decodeResult(t, w)
			deal := env["result"].(map[string]interface{})
			price := deal["new_price"].(float64)
			assert.Less(t, price, 1000.0)
			assert.GreaterOrEqual(t, price, 750.0)
			score := deal["score"].(float64)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
			assert.NotEmpty(t, deal["insight"])
		case http.StatusOK:
			// no price drop this pass
		default:
			t.Fatalf("unexpected status %d", w.Code)
		}
	}
	require.True(t, created, "expected at least one deal in 40 passes")

	w := performJSON(r, "GET", fmt.Sprintf("/api/itineraries/%d/deals", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeResult(t, w)
	deals := env["result"].([]interface{})
	assert.NotEmpty(t, deals)

	// deleting the itinerary takes its deals with it
	w = performJSON(r, "DELETE", fmt.Sprintf("/api/itineraries/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var count int64
	db.Model(&models.Deal{}).Where("itinerary_id = ?", id).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestItineraryUpdateReplacesDays(t *testing.T) {
	db := setupTestDB(t)
	r := itineraryRouter(1)

	result := createItinerary(t, r, gin.H{
		"title": "Draft",
		"days":  []gin.H{{"day": 1, "activities": []string{"arrive"}}},
	})
	id := int(result["id"].(float64))

	w := performJSON(r, "PUT", fmt.Sprintf("/api/itineraries/%d", id), gin.H{
		"title": "Final",
		"days": []gin.H{
			{"day": 1, "activities": []string{"arrive"}},
			{"day": 2, "activities": []string{"explore"}},
		},
		"num_days":         2,
		"estimated_budget": 1200,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var it models.Itinerary
	require.NoError(t, db.First(&it, id).Error)
	assert.Equal(t, "Final", it.Title)
	assert.Equal(t, 2, it.NumDays)
	assert.Equal(t, 1200.0, it.EstimatedBudget)
}
