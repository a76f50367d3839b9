package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/models"
	"gorm.io/gorm"
)

type FeedController struct {
	DB *gorm.DB
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

// FeedItem is a post row annotated for feed listings.
type FeedItem struct {
	models.Post
	AuthorUsername string  `json:"author_username"`
	CategoryTitle  *string `json:"category_title"`
	LocationName   *string `json:"location_name"`
	CommentCount   int64   `json:"comment_count"`
}

// visibleFeedQuery is the base query for the home and category feeds:
// publicly visible posts, newest pub_date first, annotated with the author
// username, category/location labels and the comment count.
func visibleFeedQuery(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Model(&models.Post{}).
		Select("posts.*, users.username AS author_username, " +
			"categories.title AS category_title, " +
			"locations.name AS location_name, " +
			"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count").
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("LEFT JOIN locations ON locations.id = posts.location_id").
		Scopes(models.PubliclyVisible(now), models.ByNewest)
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// GetHomeFeed godoc
// @Summary Get the public home feed
// @Description Returns published posts whose pub_date has passed and whose category (if any) is published
// @Tags feed
// @Accept json
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Success 200 {object} map[string]interface{}
// @Router /posts [get]
func (fc *FeedController) GetHomeFeed(c *gin.Context) {
	page := pageParam(c)
	offset := (page - 1) * FeedPageSize

	var total int64
	fc.DB.Model(&models.Post{}).
		Scopes(models.PubliclyVisible(time.Now())).
		Count(&total)

	var posts []FeedItem
	result := visibleFeedQuery(fc.DB, time.Now()).
		Offset(offset).
		Limit(FeedPageSize).
		Find(&posts)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      posts,
		"pagination": NewPaginationMeta(page, FeedPageSize, total),
	})
}
