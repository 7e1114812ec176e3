package controllers

import (
	"net/http"
	"strings"

	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/services"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const travelAssistantPrompt = "You are a travel assistant for PackYourBags. " +
	"Help users discover destinations, plan trips and budget realistically. " +
	"Keep answers concise and practical."

type AIController struct {
	db *gorm.DB
	ai *services.AIService
}

func NewAIController(ai *services.AIService) *AIController {
	return &AIController{db: utils.GetDB(), ai: ai}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// POST /api/ai/chat
// Each answered message costs one AI credit; mock fallback answers are free.
func (ac *AIController) Chat(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "message is required"})
		return
	}

	var user models.User
	if err := ac.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "User not found"})
		return
	}

	if ac.ai.Configured() && user.AICredits <= 0 {
		c.JSON(http.StatusForbidden, gin.H{"result": nil, "success": false, "error": "AI credits exhausted - upgrade your tier"})
		return
	}

	answer, err := ac.ai.Chat(travelAssistantPrompt, message)
	if err != nil {
		utils.LogError(err, "AI chat")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "AI provider request failed"})
		return
	}

	credits := user.AICredits
	if ac.ai.Configured() {
		credits--
		ac.db.Model(&user).UpdateColumn("ai_credits", gorm.Expr("ai_credits - 1"))
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"answer":          answer,
		"ai_credits_left": credits,
	}, "success": true})
}
