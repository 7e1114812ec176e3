package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserProfileController struct {
	db *gorm.DB
}

func NewUserProfileController() *UserProfileController {
	return &UserProfileController{db: utils.GetDB()}
}

// GET /api/auth/profile
func (pc *UserProfileController) GetProfile(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var user models.User
	if err := pc.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user, "success": true})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// POST /api/auth/change-password
func (pc *UserProfileController) ChangePassword(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	var user models.User
	if err := pc.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "User not found"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Old password is incorrect"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to hash password"})
		return
	}
	user.Password = string(hash)
	if err := pc.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": "password changed"}, "success": true})
}

type upgradeTierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

// POST /api/auth/upgrade-tier
// Payment processing is out of scope here; the route records the new tier and
// resets the AI credit allowance.
func (pc *UserProfileController) UpgradeTier(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var req upgradeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	tier := strings.ToLower(strings.TrimSpace(req.Tier))
	credits, ok := models.TierCredits[tier]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "tier must be one of: free, explorer, globetrotter"})
		return
	}

	var user models.User
	if err := pc.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "User not found"})
		return
	}

	user.Tier = tier
	user.AICredits = credits
	if err := pc.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update tier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user, "success": true})
}

type updatePreferencesRequest struct {
	Preferences string `json:"preferences"`
}

// POST /api/auth/preferences
func (pc *UserProfileController) UpdatePreferences(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var req updatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	if err := pc.db.Model(&models.User{}).Where("id = ?", userID).
		Update("preferences", strings.TrimSpace(req.Preferences)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": "preferences updated"}, "success": true})
}

// POST /api/auth/logout
func (pc *UserProfileController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")

	// blacklist until the token would expire anyway
	if rdb := utils.GetRedis(); rdb != nil && token != "" {
		rdb.Set(utils.RedisCtx(), "blacklist:"+token, "1", 72*time.Hour)
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": "logged out"}, "success": true})
}
