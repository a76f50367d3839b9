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

type CommentController struct {
	DB *gorm.DB
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// CreateComment godoc
// @Summary Comment on a post
// @Description Creates a comment bound to the current user and the post from the path, then redirects to the post's detail view
// @Tags comments
// @Accept json
// @Produce json
// @Param id path integer true "Post ID"
// @Param comment body CommentRequest true "Comment request"
// @Success 303
// @Router /posts/{id}/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	user := utils.GetUser(c)
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	// Author and post come from the request context and the path, never
	// from the payload
	comment := models.Comment{
		Text:      req.Text,
		AuthorID:  user.UserID,
		PostID:    post.ID,
		CreatedAt: time.Now(),
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailPath(post.ID))
}

// UpdateComment godoc
// @Summary Edit a comment
// @Description Updates a comment's text; non-authors are redirected to the owning post's detail view
// @Tags comments
// @Accept json
// @Produce json
// @Param id path integer true "Comment ID"
// @Param comment body CommentRequest true "Comment request"
// @Success 303
// @Router /comments/{id} [put]
func (cc *CommentController) UpdateComment(c *gin.Context) {
	user := utils.GetUser(c)
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, decision, err := requireCommentOwner(cc.DB, commentID, user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	if !decision.Allowed {
		c.Redirect(http.StatusSeeOther, decision.RedirectTo)
		return
	}

	if err := cc.DB.Model(comment).Update("text", req.Text).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailPath(comment.PostID))
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Deletes a comment; non-authors are redirected to the owning post's detail view
// @Tags comments
// @Accept json
// @Produce json
// @Param id path integer true "Comment ID"
// @Success 303
// @Router /comments/{id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	user := utils.GetUser(c)
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	comment, decision, err := requireCommentOwner(cc.DB, commentID, user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	if !decision.Allowed {
		c.Redirect(http.StatusSeeOther, decision.RedirectTo)
		return
	}

	if err := cc.DB.Delete(comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailPath(comment.PostID))
}
