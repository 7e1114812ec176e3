package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/services"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ItineraryController struct {
	db      *gorm.DB
	tracker *services.TrackerService
}

func NewItineraryController(tracker *services.TrackerService) *ItineraryController {
	return &ItineraryController{db: utils.GetDB(), tracker: tracker}
}

type itineraryDayPayload struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

type itineraryPayload struct {
	Title           string                `json:"title" binding:"required"`
	DestinationID   *uint                 `json:"destination_id"`
	StartDate       *time.Time            `json:"start_date"`
	NumDays         int                   `json:"num_days"`
	Days            []itineraryDayPayload `json:"days"`
	EstimatedBudget float64               `json:"estimated_budget"`
	Public          bool                  `json:"public"`
}

// POST /api/itineraries
func (ic *ItineraryController) Create(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var req itineraryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	if req.DestinationID != nil {
		var count int64
		ic.db.Model(&models.Destination{}).Where("id = ?", *req.DestinationID).Count(&count)
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Destination not found"})
			return
		}
	}

	numDays := req.NumDays
	if numDays < 1 {
		numDays = len(req.Days)
	}
	if numDays < 1 {
		numDays = 1
	}

	days, _ := json.Marshal(req.Days)

	it := models.Itinerary{
		UserID:          userID,
		DestinationID:   req.DestinationID,
		Title:           req.Title,
		StartDate:       req.StartDate,
		NumDays:         numDays,
		Days:            datatypes.JSON(days),
		EstimatedBudget: req.EstimatedBudget,
		ShareToken:      uuid.NewString(),
		Public:          req.Public,
	}
	if err := ic.db.Create(&it).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to create itinerary"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": it, "success": true})
}

// GET /api/itineraries
func (ic *ItineraryController) List(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var itineraries []models.Itinerary
	if err := ic.db.Preload("Destination").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&itineraries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load itineraries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": itineraries, "success": true})
}

// GET /api/itineraries/:id
func (ic *ItineraryController) Get(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	it, ok := ic.ownedItinerary(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": it, "success": true})
}

// PUT /api/itineraries/:id
func (ic *ItineraryController) Update(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	it, ok := ic.ownedItinerary(c, userID)
	if !ok {
		return
	}

	var req itineraryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	it.Title = req.Title
	it.DestinationID = req.DestinationID
	it.StartDate = req.StartDate
	if req.NumDays > 0 {
		it.NumDays = req.NumDays
	}
	if req.Days != nil {
		days, _ := json.Marshal(req.Days)
		it.Days = datatypes.JSON(days)
	}
	it.EstimatedBudget = req.EstimatedBudget
	it.Public = req.Public

	if err := ic.db.Save(it).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update itinerary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": it, "success": true})
}

// DELETE /api/itineraries/:id
func (ic *ItineraryController) Delete(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	it, ok := ic.ownedItinerary(c, userID)
	if !ok {
		return
	}

	if err := ic.db.Select("Deals").Delete(it).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to delete itinerary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": it.ID}, "success": true})
}

// GET /api/itineraries/:id/pdf
func (ic *ItineraryController) DownloadPDF(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	it, ok := ic.ownedItinerary(c, userID)
	if !ok {
		return
	}

	pdfBytes, err := services.GenerateItineraryPDF(it)
	if err != nil {
		utils.LogError(err, "itinerary PDF generation")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=itinerary.pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/shared/:token, public itineraries only, no auth
func (ic *ItineraryController) GetShared(c *gin.Context) {
	token := c.Param("token")

	var it models.Itinerary
	if err := ic.db.Preload("Destination").Where("share_token = ? AND public = ?", token, true).First(&it).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Itinerary not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": it, "success": true})
}

// POST /api/itineraries/:id/deals
// Runs one pass of the simulated price tracker against the stored budget.
func (ic *ItineraryController) CheckDeals(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	it, ok := ic.ownedItinerary(c, userID)
	if !ok {
		return
	}

	if it.EstimatedBudget <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Itinerary has no estimated budget"})
		return
	}

	now := time.Now()
	deal := ic.tracker.CheckItinerary(it, now)
	if deal == nil {
		c.JSON(http.StatusOK, gin.H{"result": nil, "success": true})
		return
	}

	var user models.User
	if err := ic.db.First(&user, userID).Error; err == nil {
		deal.Score = services.PersonalizeScore(deal.Score, user.Preferences)
	}

	destination := "your destination"
	if it.Destination != nil {
		destination = it.Destination.Name
	}
	deal = ic.tracker.EnhanceDeal(deal, destination)

	if err := ic.db.Create(deal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to save deal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": deal, "success": true})
}

// GET /api/itineraries/:id/deals
func (ic *ItineraryController) ListDeals(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	it, ok := ic.ownedItinerary(c, userID)
	if !ok {
		return
	}

	var deals []models.Deal
	if err := ic.db.Where("itinerary_id = ?", it.ID).Order("score DESC").Find(&deals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load deals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": deals, "success": true})
}

// ownedItinerary loads :id scoped to the current user and writes the error
// response itself when that fails
func (ic *ItineraryController) ownedItinerary(c *gin.Context, userID uint) (*models.Itinerary, bool) {
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return nil, false
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return nil, false
	}

	var it models.Itinerary
	if err := ic.db.Preload("Destination").Where("id = ? AND user_id = ?", id, userID).First(&it).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Itinerary not found"})
		return nil, false
	}
	return &it, true
}
