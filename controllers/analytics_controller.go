package controllers

import (
	"net/http"
	"strings"

	"github.com/Sishir120/PackYourBags-sub000/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

type trackEventRequest struct {
	Name       string                 `json:"name" binding:"required"`
	Properties map[string]interface{} `json:"properties"`
}

// POST /api/analytics/track
// Works for anonymous visitors too; user_id attaches when a JWT is present.
func (ac *AnalyticsController) Track(c *gin.Context) {
	var req trackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "name is required"})
		return
	}

	var userID *uint
	if id := uint(c.GetInt("user_id")); id != 0 {
		userID = &id
	}

	event, err := ac.analytics.Capture(name, userID, req.Properties)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to record event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": gin.H{"event_id": event.EventID}, "success": true})
}
