package controllers

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/models"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

type CreateCategoryRequest struct {
	Title       string `json:"title" binding:"required,max=256"`
	Description string `json:"description"`
	Slug        string `json:"slug" binding:"required"`
	IsPublished *bool  `json:"is_published"`
}

type UpdateCategoryRequest struct {
	Title       string  `json:"title" binding:"omitempty,max=256"`
	Description *string `json:"description"`
	IsPublished *bool   `json:"is_published"`
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// validateSlug checks the URL-safe identifier format: lowercase latin
// letters, digits, hyphen and underscore.
func validateSlug(slug string) error {
	if len(slug) > 64 {
		return fmt.Errorf("slug must be no more than 64 characters long")
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("slug can only contain lowercase letters, numbers, hyphens and underscores")
	}
	return nil
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	var categories []models.Category
	result := cc.DB.Where("is_published = ?", true).Order("title ASC").Find(&categories)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    categories,
	})
}

// GetCategoryFeed godoc
// @Summary Get a category's post feed
// @Description Resolves a published category by slug and returns its publicly visible posts
// @Tags categories
// @Accept json
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query integer false "Page number (default: 1)"
// @Success 200 {object} map[string]interface{}
// @Router /categories/{slug} [get]
func (cc *CategoryController) GetCategoryFeed(c *gin.Context) {
	slug := c.Param("slug")

	// An unpublished category is indistinguishable from an absent one
	var category models.Category
	if err := cc.DB.Where("slug = ? AND is_published = ?", slug, true).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	page := pageParam(c)
	offset := (page - 1) * FeedPageSize

	var total int64
	cc.DB.Model(&models.Post{}).
		Scopes(models.PubliclyVisible(time.Now())).
		Where("posts.category_id = ?", category.ID).
		Count(&total)

	var posts []FeedItem
	result := visibleFeedQuery(cc.DB, time.Now()).
		Where("posts.category_id = ?", category.ID).
		Offset(offset).
		Limit(FeedPageSize).
		Find(&posts)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"posts":      posts,
		"pagination": NewPaginationMeta(page, FeedPageSize, total),
	})
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateSlug(req.Slug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Category
	if err := cc.DB.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category slug already exists"})
		return
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	category := models.Category{
		Publication: models.Publication{IsPublished: isPublished},
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
	}

	if err := cc.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category slug already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"category": category,
	})
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	slug := c.Param("slug")

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := cc.DB.Where("slug = ?", slug).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}

	if err := cc.DB.Model(&category).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
	})
}

// DeleteCategory removes a category. Posts filed under it are kept and
// detached: their category reference is nulled, never cascaded.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	slug := c.Param("slug")

	var category models.Category
	if err := cc.DB.Where("slug = ?", slug).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	tx := cc.DB.Begin()

	if err := tx.Model(&models.Post{}).
		Where("category_id = ?", category.ID).
		Update("category_id", nil).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach posts"})
		return
	}

	if err := tx.Delete(&category).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category successfully deleted",
	})
}
