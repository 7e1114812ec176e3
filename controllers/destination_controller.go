package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Sishir120/PackYourBags-sub000/models"
	"github.com/Sishir120/PackYourBags-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DestinationController struct {
	db *gorm.DB
}

func NewDestinationController() *DestinationController {
	return &DestinationController{db: utils.GetDB()}
}

// GET /api/destinations?continent=&country=&budget_tier=&q=&page=1&limit=20
func (dc *DestinationController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := dc.db.Model(&models.Destination{})
	if continent := strings.TrimSpace(c.Query("continent")); continent != "" {
		query = query.Where("continent = ?", continent)
	}
	if country := strings.TrimSpace(c.Query("country")); country != "" {
		query = query.Where("country = ?", country)
	}
	if tier := strings.TrimSpace(c.Query("budget_tier")); tier != "" {
		if !models.ValidBudgetTier(tier) {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "budget_tier must be one of: budget-friendly, mid-range, luxury"})
			return
		}
		query = query.Where("budget_tier = ?", tier)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(country) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to count destinations"})
		return
	}

	var destinations []models.Destination
	if err := query.Order("rating DESC, name ASC").Offset(offset).Limit(limit).Find(&destinations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load destinations"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"content":       destinations,
		"totalElements": total,
		"totalPages":    totalPages,
		"page":          page,
		"size":          limit,
	}, "success": true})
}

// GET /api/destinations/:idOrSlug
func (dc *DestinationController) Get(c *gin.Context) {
	param := c.Param("idOrSlug")

	var dest models.Destination
	var err error
	if id, convErr := strconv.Atoi(param); convErr == nil && id > 0 {
		err = dc.db.First(&dest, id).Error
	} else {
		err = dc.db.Where("slug = ?", param).First(&dest).Error
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Destination not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": dest, "success": true})
}

// GET /api/destinations/random
func (dc *DestinationController) Random(c *gin.Context) {
	var dest models.Destination
	order := "RANDOM()"
	if dc.db.Dialector.Name() == "mysql" {
		order = "RAND()"
	}
	if err := dc.db.Order(order).First(&dest).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "No destinations available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": dest, "success": true})
}

// GET /api/destinations/continents
func (dc *DestinationController) Continents(c *gin.Context) {
	type continentCount struct {
		Continent string `json:"continent"`
		Count     int64  `json:"count"`
	}
	var counts []continentCount
	if err := dc.db.Model(&models.Destination{}).
		Select("continent, COUNT(*) as count").
		Where("continent <> ''").
		Group("continent").Order("continent").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load continents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": counts, "success": true})
}

type destinationPayload struct {
	Name        string   `json:"name" binding:"required"`
	Slug        string   `json:"slug"`
	Country     string   `json:"country" binding:"required"`
	Continent   string   `json:"continent" binding:"required"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Images      []string `json:"images"`
	BudgetTier  string   `json:"budget_tier"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	BestSeason  string   `json:"best_season"`
	Rating      float64  `json:"rating"`
	DailyCost   float64  `json:"daily_cost"`
}

// POST /api/destinations (admin)
func (dc *DestinationController) Create(c *gin.Context) {
	var req destinationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	tier := req.BudgetTier
	if tier == "" {
		tier = models.BudgetMidRange
	}
	if !models.ValidBudgetTier(tier) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "budget_tier must be one of: budget-friendly, mid-range, luxury"})
		return
	}

	var count int64
	dc.db.Model(&models.Destination{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Destination with this slug already exists"})
		return
	}

	highlights, _ := json.Marshal(req.Highlights)
	images, _ := json.Marshal(req.Images)

	dest := models.Destination{
		Name:        req.Name,
		Slug:        slug,
		Country:     req.Country,
		Continent:   req.Continent,
		Description: req.Description,
		Highlights:  datatypes.JSON(highlights),
		Images:      datatypes.JSON(images),
		BudgetTier:  tier,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		BestSeason:  req.BestSeason,
		Rating:      req.Rating,
		DailyCost:   req.DailyCost,
	}
	if err := dc.db.Create(&dest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to create destination"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": dest, "success": true})
}

// PUT /api/destinations/:idOrSlug (admin, numeric id)
func (dc *DestinationController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("idOrSlug"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}

	var dest models.Destination
	if err := dc.db.First(&dest, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Destination not found"})
		return
	}

	var req destinationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	if req.BudgetTier != "" && !models.ValidBudgetTier(req.BudgetTier) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "budget_tier must be one of: budget-friendly, mid-range, luxury"})
		return
	}

	dest.Name = req.Name
	if req.Slug != "" {
		dest.Slug = req.Slug
	}
	dest.Country = req.Country
	dest.Continent = req.Continent
	dest.Description = req.Description
	if req.Highlights != nil {
		highlights, _ := json.Marshal(req.Highlights)
		dest.Highlights = datatypes.JSON(highlights)
	}
	if req.Images != nil {
		images, _ := json.Marshal(req.Images)
		dest.Images = datatypes.JSON(images)
	}
	if req.BudgetTier != "" {
		dest.BudgetTier = req.BudgetTier
	}
	dest.Latitude = req.Latitude
	dest.Longitude = req.Longitude
	dest.BestSeason = req.BestSeason
	dest.Rating = req.Rating
	dest.DailyCost = req.DailyCost

	if err := dc.db.Save(&dest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update destination"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": dest, "success": true})
}

// DELETE /api/destinations/:idOrSlug (admin, numeric id)
func (dc *DestinationController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("idOrSlug"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}

	var dest models.Destination
	if err := dc.db.First(&dest, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Destination not found"})
		return
	}

	if err := dc.db.Delete(&dest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to delete destination"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": dest.ID}, "success": true})
}
