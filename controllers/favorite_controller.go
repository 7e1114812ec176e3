package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController() *FavoriteController {
	return &FavoriteController{db: utils.GetDB()}
}

// POST /api/favorites
func (fc *FavoriteController) Create(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return
	}

	var req struct {
		DestinationID uint `json:"destination_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	var destCount int64
	if err := fc.db.Model(&models.Destination{}).Where("id = ?", req.DestinationID).Count(&destCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to check destination"})
		return
	}
	if destCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Destination not found"})
		return
	}

	// one favorite per user/destination pair
	var existing models.Favorite
	if err := fc.db.Where("user_id = ? AND destination_id = ?", userID, req.DestinationID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Already in favorites"})
		return
	}

	fav := models.Favorite{
		UserID:        userID,
		DestinationID: req.DestinationID,
	}
	if err := fc.db.Create(&fav).Error; err != nil {
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "23505") {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Already in favorites"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to create favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": fav, "success": true})
}

// GET /api/favorites?page=1&limit=20
func (fc *FavoriteController) List(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fc.db.Model(&models.Favorite{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to count favorites"})
		return
	}

	var favorites []models.Favorite
	if err := fc.db.Preload("Destination").Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load favorites"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"content":       favorites,
		"totalElements": total,
		"totalPages":    totalPages,
		"page":          page,
		"size":          limit,
	}, "success": true})
}

// DELETE /api/favorites/:id
func (fc *FavoriteController) Delete(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Not authorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}

	var fav models.Favorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&fav).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Favorite not found"})
		return
	}

	if err := fc.db.Delete(&fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to delete favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": fav.ID}, "success": true})
}
