package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PriceWatchController struct {
	db *gorm.DB
}

func NewPriceWatchController() *PriceWatchController {
	return &PriceWatchController{db: utils.GetDB()}
}

type priceWatchPayload struct {
	Destination string  `json:"destination" binding:"required"`
	Origin      string  `json:"origin"`
	LastPrice   float64 `json:"last_price"`
	TargetPrice float64 `json:"target_price"`
	PercentDrop float64 `json:"percent_drop"`
}

// POST /api/price-watch
func (pc *PriceWatchController) Create(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return
	}

	var req priceWatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "destination is required"})
		return
	}

	percentDrop := req.PercentDrop
	if percentDrop <= 0 {
		percentDrop = 10
	}

	watch := models.PriceWatch{
		UserID:      userID,
		Destination: destination,
		Origin:      strings.ToUpper(strings.TrimSpace(req.Origin)),
		LastPrice:   req.LastPrice,
		TargetPrice: req.TargetPrice,
		PercentDrop: percentDrop,
		Active:      true,
	}
	if err := pc.db.Create(&watch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to create price watch"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": watch, "success": true})
}

// GET /api/price-watch
func (pc *PriceWatchController) List(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return
	}

	var watches []models.PriceWatch
	if err := pc.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&watches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load price watches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": watches, "success": true})
}

// PUT /api/price-watch/:id
func (pc *PriceWatchController) Update(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	watch, ok := pc.ownedWatch(c, userID)
	if !ok {
		return
	}

	var req priceWatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	watch.Destination = strings.TrimSpace(req.Destination)
	watch.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	watch.LastPrice = req.LastPrice
	watch.TargetPrice = req.TargetPrice
	if req.PercentDrop > 0 {
		watch.PercentDrop = req.PercentDrop
	}

	if err := pc.db.Save(watch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update price watch"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": watch, "success": true})
}

type muteRequest struct {
	Days int `json:"days" binding:"required,min=1,max=90"`
}

// POST /api/price-watch/:id/mute
func (pc *PriceWatchController) Mute(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	watch, ok := pc.ownedWatch(c, userID)
	if !ok {
		return
	}

	var req muteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "days must be between 1 and 90"})
		return
	}

	until := time.Now().AddDate(0, 0, req.Days)
	watch.MuteUntil = &until
	if err := pc.db.Save(watch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to mute price watch"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": watch, "success": true})
}

// DELETE /api/price-watch/:id
func (pc *PriceWatchController) Delete(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	watch, ok := pc.ownedWatch(c, userID)
	if !ok {
		return
	}

	if err := pc.db.Delete(watch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to delete price watch"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": watch.ID}, "success": true})
}

func (pc *PriceWatchController) ownedWatch(c *gin.Context, userID uint) (*models.PriceWatch, bool) {
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return nil, false
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return nil, false
	}

	var watch models.PriceWatch
	if err := pc.db.Where("id = ? AND user_id = ?", id, userID).First(&watch).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Price watch not found"})
		return nil, false
	}
	return &watch, true
}
