package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubscriberController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewSubscriberController(cfg *config.Config) *SubscriberController {
	return &SubscriberController{db: utils.GetDB(), cfg: cfg}
}

type subscribeRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Preferences []string `json:"preferences"`
}

// POST /api/subscribe
// A new email creates exactly one subscriber; repeating the call updates
// preferences instead of duplicating.
func (sc *SubscriberController) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	prefs, _ := json.Marshal(req.Preferences)

	var sub models.Subscriber
	err := sc.db.Where("email = ?", email).First(&sub).Error
	if err == nil {
		sub.Preferences = datatypes.JSON(prefs)
		sub.Active = true
		if err := sc.db.Save(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update subscription"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": sub, "success": true})
		return
	}

	sub = models.Subscriber{
		Email:       email,
		Preferences: datatypes.JSON(prefs),
		Active:      true,
	}
	if err := sc.db.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to create subscription"})
		return
	}

	// welcome mail is best effort, a mail outage must not fail the signup
	cfg := sc.cfg
	go func(to string) {
		err := utils.SendEmail(to, "Welcome to PackYourBags",
			"Thanks for subscribing! You'll hear from us when we find trips worth packing for.",
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		if err != nil {
			utils.LogError(err, "subscriber welcome email")
		}
	}(email)

	c.JSON(http.StatusCreated, gin.H{"result": sub, "success": true})
}

type unsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/unsubscribe
func (sc *SubscriberController) Unsubscribe(c *gin.Context) {
	var req unsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var sub models.Subscriber
	if err := sc.db.Where("email = ?", email).First(&sub).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Subscriber not found"})
		return
	}

	sub.Active = false
	if err := sc.db.Save(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to unsubscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": "unsubscribed"}, "success": true})
}
