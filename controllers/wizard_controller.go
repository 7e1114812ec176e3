package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/services"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
)

type WizardController struct {
	calendar *services.CalendarService
	flights  *services.FlightsService
}

func NewWizardController(calendar *services.CalendarService, flights *services.FlightsService) *WizardController {
	return &WizardController{calendar: calendar, flights: flights}
}

func calendarTokenKey(userID uint) string {
	return fmt.Sprintf("calendar_token:%d", userID)
}

type wizardRequest struct {
	// busy intervals supplied directly; when empty the user's Google
	// Calendar is consulted instead
	BusyIntervals []services.BusyInterval `json:"busy_intervals"`
	// optional IATA codes to attach flight quotes for the found weekend
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// POST /api/weekend-wizard
// Finds the first weekend within 120 days with at least 54 of 72 hours free.
func (wc *WizardController) FindWeekend(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return
	}

	var req wizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	now := time.Now().UTC()
	busy := req.BusyIntervals
	calendarUsed := false

	if len(busy) == 0 {
		token := ""
		if rdb := utils.GetRedis(); rdb != nil {
			token, _ = rdb.Get(utils.RedisCtx(), calendarTokenKey(userID)).Result()
		}
		if token != "" {
			fetched, err := wc.calendar.FetchBusy(userID, token, now, now.AddDate(0, 0, 121))
			if err != nil {
				utils.LogError(err, "weekend wizard calendar fetch")
				c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to read calendar"})
				return
			}
			busy = fetched
			calendarUsed = true
		}
	}

	window := services.FindFreeWeekend(now, busy)
	if window == nil {
		c.JSON(http.StatusOK, gin.H{"result": gin.H{
			"weekend":       nil,
			"calendar_used": calendarUsed,
			"message":       "No free weekend found within the next 120 days",
		}, "success": true})
		return
	}

	result := gin.H{
		"weekend":       window,
		"calendar_used": calendarUsed,
	}

	origin := strings.ToUpper(strings.TrimSpace(req.Origin))
	destination := strings.ToUpper(strings.TrimSpace(req.Destination))
	if origin != "" && destination != "" {
		quotes, err := wc.flights.SearchFlights(origin, destination,
			window.Start.Format("2006-01-02"), window.End.AddDate(0, 0, -1).Format("2006-01-02"))
		if err != nil {
			// flight quotes are a bonus, the weekend result still stands
			utils.LogError(err, "weekend wizard flight search")
		} else {
			result["flights"] = quotes
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "success": true})
}
