package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/models"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

type LocationRequest struct {
	Name        string `json:"name" binding:"required,max=256"`
	IsPublished *bool  `json:"is_published"`
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

func (lc *LocationController) ListLocations(c *gin.Context) {
	var locations []models.Location
	result := lc.DB.Where("is_published = ?", true).Order("name ASC").Find(&locations)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching locations"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    locations,
	})
}

func (lc *LocationController) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	location := models.Location{
		Publication: models.Publication{IsPublished: isPublished},
		Name:        req.Name,
	}

	if err := lc.DB.Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"location": location,
	})
}

func (lc *LocationController) UpdateLocation(c *gin.Context) {
	locationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var location models.Location
	if err := lc.DB.First(&location, locationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	updates := map[string]interface{}{"name": req.Name}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}

	if err := lc.DB.Model(&location).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"location": location,
	})
}

// DeleteLocation detaches the location from its posts (null, not cascade)
// and removes it.
func (lc *LocationController) DeleteLocation(c *gin.Context) {
	locationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	var location models.Location
	if err := lc.DB.First(&location, locationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	tx := lc.DB.Begin()

	if err := tx.Model(&models.Post{}).
		Where("location_id = ?", location.ID).
		Update("location_id", nil).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach posts"})
		return
	}

	if err := tx.Delete(&location).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Location successfully deleted",
	})
}
