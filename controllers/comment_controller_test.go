package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/inkwell/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentBindsAuthorAndPostFromRequest(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	commenter := createUser(t, db, "bob", "user")
	post := createPost(t, db, author, "a post", postOpts{published: true})
	decoy := createPost(t, db, author, "decoy", postOpts{published: true})

	// Client-supplied author/post references are ignored; only the path
	// and the token matter
	payload := map[string]interface{}{
		"text":      "well said",
		"post_id":   decoy.ID,
		"author_id": author.ID,
	}

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), tokenFor(t, commenter), payload)
	requireStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), w.Header().Get("Location"))

	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)
	assert.Equal(t, commenter.ID, comment.AuthorID)
	assert.Equal(t, post.ID, comment.PostID)
}

func TestCreateCommentMissingPost(t *testing.T) {
	db, r := setupTest(t)

	commenter := createUser(t, db, "bob", "user")

	w := doRequest(t, r, http.MethodPost, "/api/posts/9999/comments", tokenFor(t, commenter), map[string]interface{}{"text": "hello"})
	requireStatus(t, w, http.StatusNotFound)
}

func TestCreateCommentValidation(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	commenter := createUser(t, db, "bob", "user")
	post := createPost(t, db, author, "a post", postOpts{published: true})

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), tokenFor(t, commenter), map[string]interface{}{})
	requireStatus(t, w, http.StatusBadRequest)

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateCommentOwnershipGuard(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	commenter := createUser(t, db, "bob", "user")
	post := createPost(t, db, author, "a post", postOpts{published: true})
	comment := createComment(t, db, commenter, post, "original")

	payload := map[string]interface{}{"text": "edited"}

	// The post's author still cannot edit someone else's comment
	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/comments/%d", comment.ID), tokenFor(t, author), payload)
	requireStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), w.Header().Get("Location"))

	var unchanged models.Comment
	require.NoError(t, db.First(&unchanged, comment.ID).Error)
	assert.Equal(t, "original", unchanged.Text)

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/comments/%d", comment.ID), tokenFor(t, commenter), payload)
	requireStatus(t, w, http.StatusSeeOther)

	var updated models.Comment
	require.NoError(t, db.First(&updated, comment.ID).Error)
	assert.Equal(t, "edited", updated.Text)
}

func TestDeleteCommentOwnershipGuard(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	commenter := createUser(t, db, "bob", "user")
	post := createPost(t, db, author, "a post", postOpts{published: true})
	comment := createComment(t, db, commenter, post, "keep me")

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), tokenFor(t, author), nil)
	requireStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), w.Header().Get("Location"))

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.EqualValues(t, 1, count)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), tokenFor(t, commenter), nil)
	requireStatus(t, w, http.StatusSeeOther)

	db.Model(&models.Comment{}).Count(&count)
	assert.Zero(t, count)
}
