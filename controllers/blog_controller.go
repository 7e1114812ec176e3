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

type BlogController struct {
	db *gorm.DB
}

func NewBlogController() *BlogController {
	return &BlogController{db: utils.GetDB()}
}

type blogPayload struct {
	Title          string   `json:"title" binding:"required"`
	Slug           string   `json:"slug"`
	Content        string   `json:"content" binding:"required"`
	Excerpt        string   `json:"excerpt"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
	Tags           []string `json:"tags"`
	DestinationID  *uint    `json:"destination_id"`
	Published      bool     `json:"published"`
}

// GET /api/blogs?tag=&page=1&limit=20
func (bc *BlogController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := bc.db.Model(&models.Blog{}).Where("published = ?", true)
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		// tags are a JSON string array; cast so the match works on jsonb too
		query = query.Where("CAST(tags AS TEXT) LIKE ?", "%\""+tag+"\"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to count blogs"})
		return
	}

	var blogs []models.Blog
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load blogs"})
		return
	}

	// list view carries the excerpt only
	for i := range blogs {
		blogs[i].Content = ""
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"content":       blogs,
		"totalElements": total,
		"totalPages":    totalPages,
		"page":          page,
		"size":          limit,
	}, "success": true})
}

// GET /api/blogs/:slug
func (bc *BlogController) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var blog models.Blog
	if err := bc.db.Preload("Destination").Where("slug = ? AND published = ?", slug, true).First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Blog not found"})
		return
	}

	bc.db.Model(&blog).UpdateColumn("views", gorm.Expr("views + 1"))
	blog.Views++

	c.JSON(http.StatusOK, gin.H{"result": blog, "success": true})
}

// POST /api/blogs (admin)
func (bc *BlogController) Create(c *gin.Context) {
	var req blogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	var count int64
	bc.db.Model(&models.Blog{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Blog with this slug already exists"})
		return
	}

	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = utils.ExtractExcerpt(req.Content, 200)
	}
	seoDescription := req.SEODescription
	if seoDescription == "" {
		seoDescription = utils.ExtractExcerpt(req.Content, 160)
	}
	seoTitle := req.SEOTitle
	if seoTitle == "" {
		seoTitle = req.Title
	}

	tags, _ := json.Marshal(req.Tags)

	blog := models.Blog{
		Title:          req.Title,
		Slug:           slug,
		Content:        req.Content,
		Excerpt:        excerpt,
		SEOTitle:       seoTitle,
		SEODescription: seoDescription,
		Tags:           datatypes.JSON(tags),
		DestinationID:  req.DestinationID,
		Published:      req.Published,
	}
	if err := bc.db.Create(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to create blog"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": blog, "success": true})
}

// PUT /api/blogs/:slug (admin, numeric id)
func (bc *BlogController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("slug"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}

	var blog models.Blog
	if err := bc.db.First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Blog not found"})
		return
	}

	var req blogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	blog.Title = req.Title
	if req.Slug != "" {
		blog.Slug = req.Slug
	}
	blog.Content = req.Content
	if req.Excerpt != "" {
		blog.Excerpt = req.Excerpt
	} else {
		blog.Excerpt = utils.ExtractExcerpt(req.Content, 200)
	}
	if req.SEOTitle != "" {
		blog.SEOTitle = req.SEOTitle
	}
	if req.SEODescription != "" {
		blog.SEODescription = req.SEODescription
	}
	if req.Tags != nil {
		tags, _ := json.Marshal(req.Tags)
		blog.Tags = datatypes.JSON(tags)
	}
	blog.DestinationID = req.DestinationID
	blog.Published = req.Published

	if err := bc.db.Save(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": blog, "success": true})
}

// DELETE /api/blogs/:slug (admin, numeric id)
func (bc *BlogController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("slug"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}

	var blog models.Blog
	if err := bc.db.First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Blog not found"})
		return
	}

	if err := bc.db.Delete(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to delete blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": blog.ID}, "success": true})
}
