package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/inkwell/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDetailAuthorSeesOwnHiddenPost(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	post := createPost(t, db, author, "draft", postOpts{published: false})

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), tokenFor(t, author), nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	got := body["post"].(map[string]interface{})
	assert.Equal(t, "draft", got["title"])
}

func TestPostDetailHiddenFromOthers(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	other := createUser(t, db, "bob", "user")
	post := createPost(t, db, author, "draft", postOpts{published: false})

	// Another authenticated user gets a 404, not a peek at the draft
	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), tokenFor(t, other), nil)
	requireStatus(t, w, http.StatusNotFound)

	// So does an anonymous reader
	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestPostDetailPublicPost(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	reader := createUser(t, db, "bob", "user")
	post := createPost(t, db, author, "public", postOpts{published: true})
	createComment(t, db, reader, post, "late")
	early := createComment(t, db, author, post, "early")
	require.NoError(t, db.Model(early).Update("created_at", time.Now().Add(-time.Hour)).Error)

	for _, token := range []string{"", tokenFor(t, reader)} {
		w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), token, nil)
		requireStatus(t, w, http.StatusOK)

		body := decodeBody(t, w)
		comments := body["comments"].([]interface{})
		require.Len(t, comments, 2)
		// Chronological thread order, oldest first
		assert.Equal(t, "early", comments[0].(map[string]interface{})["text"])
		assert.Equal(t, "late", comments[1].(map[string]interface{})["text"])
	}
}

func TestFutureDatedPostScheduling(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	category := createCategory(t, db, "travel", true)
	post := createPost(t, db, author, "scheduled", postOpts{
		published:  true,
		pubDate:    time.Now().Add(24 * time.Hour),
		categoryID: &category.ID,
	})

	// Absent from the public feed and detail until pub_date passes
	w := doRequest(t, r, http.MethodGet, "/api/posts", "", nil)
	assert.Empty(t, feedTitles(t, w))

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	requireStatus(t, w, http.StatusNotFound)

	// Always present to its author
	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), tokenFor(t, author), nil)
	requireStatus(t, w, http.StatusOK)

	// No scheduler flips state: once the stored pub_date is in the past
	// the same reads see the post
	require.NoError(t, db.Model(post).Update("pub_date", time.Now().Add(-time.Minute)).Error)

	w = doRequest(t, r, http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, []string{"scheduled"}, feedTitles(t, w))
}

func TestCreatePost(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	category := createCategory(t, db, "travel", true)
	location := createLocation(t, db, "Reykjavik")

	payload := map[string]interface{}{
		"title":       "trip notes",
		"text":        "day one",
		"pub_date":    time.Now().Format(time.RFC3339),
		"category_id": category.ID,
		"location_id": location.ID,
	}

	w := doRequest(t, r, http.MethodPost, "/api/posts", tokenFor(t, author), payload)
	requireStatus(t, w, http.StatusCreated)

	var post models.Post
	require.NoError(t, db.Where("title = ?", "trip notes").First(&post).Error)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.True(t, post.IsPublished)
	require.NotNil(t, post.CategoryID)
	assert.Equal(t, category.ID, *post.CategoryID)
	require.NotNil(t, post.LocationID)
	assert.Equal(t, location.ID, *post.LocationID)
}

func TestCreatePostValidation(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")

	// Missing required fields never produce a partial write
	w := doRequest(t, r, http.MethodPost, "/api/posts", tokenFor(t, author), map[string]interface{}{"title": "no body"})
	requireStatus(t, w, http.StatusBadRequest)

	var count int64
	db.Model(&models.Post{}).Count(&count)
	assert.Zero(t, count)

	// Anonymous creation is rejected outright
	w = doRequest(t, r, http.MethodPost, "/api/posts", "", map[string]interface{}{})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestCreatePostUnpublishedDraft(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")

	payload := map[string]interface{}{
		"title":        "quiet draft",
		"text":         "not yet",
		"pub_date":     time.Now().Format(time.RFC3339),
		"is_published": false,
	}

	w := doRequest(t, r, http.MethodPost, "/api/posts", tokenFor(t, author), payload)
	requireStatus(t, w, http.StatusCreated)

	var post models.Post
	require.NoError(t, db.Where("title = ?", "quiet draft").First(&post).Error)
	assert.False(t, post.IsPublished)
}

func TestUpdatePostOwnershipGuard(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	intruder := createUser(t, db, "bob", "user")
	post := createPost(t, db, author, "original title", postOpts{published: true})

	payload := map[string]interface{}{"title": "hijacked"}

	// Ownership mismatch is a soft deny: redirect to the public detail
	// view, nothing written
	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/posts/%d", post.ID), tokenFor(t, intruder), payload)
	requireStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), w.Header().Get("Location"))

	var unchanged models.Post
	require.NoError(t, db.First(&unchanged, post.ID).Error)
	assert.Equal(t, "original title", unchanged.Title)

	// The author goes through
	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/posts/%d", post.ID), tokenFor(t, author), payload)
	requireStatus(t, w, http.StatusOK)

	var updated models.Post
	require.NoError(t, db.First(&updated, post.ID).Error)
	assert.Equal(t, "hijacked", updated.Title)
}

func TestDeletePostOwnershipGuard(t *testing.T) {
	db, r := setupTest(t)

	author := createUser(t, db, "alice", "user")
	intruder := createUser(t, db, "bob", "user")
	post := createPost(t, db, author, "keep me", postOpts{published: true})
	createComment(t, db, intruder, post, "nice post")

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), tokenFor(t, intruder), nil)
	requireStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), w.Header().Get("Location"))

	var count int64
	db.Model(&models.Post{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// Owner delete removes the post and its comment thread
	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), tokenFor(t, author), nil)
	requireStatus(t, w, http.StatusOK)

	db.Model(&models.Post{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Comment{}).Count(&count)
	assert.Zero(t, count)
}
