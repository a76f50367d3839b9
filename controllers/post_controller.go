package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/api-go/models"
	"github.com/inkwell/api-go/utils"
	"gorm.io/gorm"
)

type PostController struct {
	DB *gorm.DB
}

type CreatePostRequest struct {
	Title       string    `json:"title" binding:"required,max=256"`
	Text        string    `json:"text" binding:"required"`
	PubDate     time.Time `json:"pub_date" binding:"required"`
	CategoryID  *uint     `json:"category_id"`
	LocationID  *uint     `json:"location_id"`
	Image       string    `json:"image"`
	IsPublished *bool     `json:"is_published"`
}

type UpdatePostRequest struct {
	Title       string     `json:"title" binding:"omitempty,max=256"`
	Text        string     `json:"text"`
	PubDate     *time.Time `json:"pub_date"`
	CategoryID  *uint      `json:"category_id"`
	LocationID  *uint      `json:"location_id"`
	Image       *string    `json:"image"`
	IsPublished *bool      `json:"is_published"`
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// CreatePost godoc
// @Summary Create a new post
// @Description Creates a post authored by the current user; pub_date may be in the future for scheduled publication
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := pc.DB.First(&category, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
	}

	if req.LocationID != nil {
		var location models.Location
		if err := pc.DB.First(&location, *req.LocationID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
	}

	// Posts are published unless the author opts out
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	post := models.Post{
		Publication: models.Publication{IsPublished: isPublished},
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     req.PubDate,
		Image:       req.Image,
		AuthorID:    user.UserID,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	pc.DB.Preload("Author").Preload("Category").Preload("Location").First(&post, post.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"post":    post,
	})
}

// GetPostDetail godoc
// @Summary Get a single post
// @Description Resolves a post by id; authors can reach their own unpublished, future-dated or hidden-category posts by direct link
// @Tags posts
// @Accept json
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [get]
func (pc *PostController) GetPostDetail(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	user := utils.GetUser(c)

	// Resolve among publicly visible posts first; for an authenticated
	// viewer fall back to their own posts so unpublished drafts stay
	// reachable by direct link, but never anyone else's.
	var post models.Post
	err = pc.DB.
		Preload("Author").Preload("Category").Preload("Location").
		Scopes(models.PubliclyVisible(time.Now())).
		First(&post, postID).Error

	if err != nil && user != nil {
		err = pc.DB.
			Preload("Author").Preload("Category").Preload("Location").
			Scopes(models.AuthoredBy(user.UserID)).
			First(&post, postID).Error
	}

	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	// Thread order is chronological, oldest first
	var comments []models.Comment
	pc.DB.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments)

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// UpdatePost godoc
// @Summary Update an existing post
// @Description Updates a post; non-authors are redirected to the post's public detail view
// @Tags posts
// @Accept json
// @Produce json
// @Param id path integer true "Post ID"
// @Param post body UpdatePostRequest true "Post update request"
// @Success 200 {object} models.Post
// @Router /posts/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	user := utils.GetUser(c)
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, decision, err := requirePostOwner(pc.DB, postID, user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if !decision.Allowed {
		c.Redirect(http.StatusSeeOther, decision.RedirectTo)
		return
	}

	updates := make(map[string]interface{})

	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Text != "" {
		updates["text"] = req.Text
	}
	if req.PubDate != nil {
		updates["pub_date"] = *req.PubDate
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := pc.DB.First(&category, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.LocationID != nil {
		var location models.Location
		if err := pc.DB.First(&location, *req.LocationID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		updates["location_id"] = *req.LocationID
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}
	updates["updated_at"] = time.Now()

	if err := pc.DB.Model(post).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	pc.DB.Preload("Author").Preload("Category").Preload("Location").First(post, post.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Description Deletes a post and its comments; non-authors are redirected to the post's public detail view
// @Tags posts
// @Accept json
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, decision, err := requirePostOwner(pc.DB, postID, user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if !decision.Allowed {
		c.Redirect(http.StatusSeeOther, decision.RedirectTo)
		return
	}

	tx := pc.DB.Begin()

	if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comments"})
		return
	}

	if err := tx.Delete(post).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post successfully deleted",
	})
}
