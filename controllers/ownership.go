package controllers

import (
	"fmt"

	"github.com/inkwell/api-go/models"
	"github.com/inkwell/api-go/utils"
	"gorm.io/gorm"
)

// OwnershipDecision is the outcome of the pre-mutation ownership check.
// A denial is not an authorization error: the caller answers with a
// redirect to the entity's public detail view instead of a 403, so a
// non-owner ends up on the read-only page they were allowed to see
// anyway.
type OwnershipDecision struct {
	Allowed    bool
	RedirectTo string
}

func allowDecision() OwnershipDecision {
	return OwnershipDecision{Allowed: true}
}

func denyWithRedirect(target string) OwnershipDecision {
	return OwnershipDecision{Allowed: false, RedirectTo: target}
}

func postDetailPath(postID uint) string {
	return fmt.Sprintf("/api/posts/%d", postID)
}

// requirePostOwner resolves a post by id and checks that the acting user
// authored it. The returned error is gorm.ErrRecordNotFound when the post
// does not exist.
func requirePostOwner(db *gorm.DB, postID int, user *utils.UserClaims) (*models.Post, OwnershipDecision, error) {
	var post models.Post
	if err := db.First(&post, postID).Error; err != nil {
		return nil, OwnershipDecision{}, err
	}

	if post.AuthorID != user.UserID {
		return &post, denyWithRedirect(postDetailPath(post.ID)), nil
	}

	return &post, allowDecision(), nil
}

// requireCommentOwner is the same check keyed by comment id; the redirect
// target on a mismatch is the owning post's detail view.
func requireCommentOwner(db *gorm.DB, commentID int, user *utils.UserClaims) (*models.Comment, OwnershipDecision, error) {
	var comment models.Comment
	if err := db.First(&comment, commentID).Error; err != nil {
		return nil, OwnershipDecision{}, err
	}

	if comment.AuthorID != user.UserID {
		return &comment, denyWithRedirect(postDetailPath(comment.PostID)), nil
	}

	return &comment, allowDecision(), nil
}
