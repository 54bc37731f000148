package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croftbar/blogadmin/models"
)

func TestCreatePostDefaultsToDraft(t *testing.T) {
	r, _ := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "Alice")
	post := createPost(t, r, "T", author.ID)

	assert.False(t, post.Published)
	assert.Equal(t, author.ID, post.AuthorID)
	require.NotNil(t, post.Author)
	assert.Equal(t, author.Email, post.Author.Email)
}

func TestCreatePostWithContentAndPublished(t *testing.T) {
	r, _ := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "")
	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]any{
		"title":     "Ready",
		"content":   "body text",
		"authorId":  author.ID,
		"published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var post postResp
	decode(t, w, &post)
	assert.True(t, post.Published)
	require.NotNil(t, post.Content)
	assert.Equal(t, "body text", *post.Content)
}

func TestCreatePostEmptyTitle(t *testing.T) {
	r, db := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "")
	for _, title := range []string{"", "   "} {
		w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]any{
			"title":    title,
			"authorId": author.ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreatePostMissingAuthorID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]any{"title": "T"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]any{
		"title":    "T",
		"authorId": 99,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	var body errResp
	decode(t, w, &body)
	assert.Contains(t, body.Error, "author")

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPublishToggleLeavesOtherFieldsAlone(t *testing.T) {
	r, _ := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "")
	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]any{
		"title":    "T",
		"content":  "original",
		"authorId": author.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created postResp
	decode(t, w, &created)
	require.False(t, created.Published)

	w = doJSON(t, r, http.MethodPatch, "/api/posts/1", map[string]any{"published": true})
	require.Equal(t, http.StatusOK, w.Code)
	var updated postResp
	decode(t, w, &updated)
	assert.True(t, updated.Published)
	assert.Equal(t, "T", updated.Title)
	require.NotNil(t, updated.Content)
	assert.Equal(t, "original", *updated.Content)
	assert.Equal(t, author.ID, updated.AuthorID)
}

func TestUpdatePostEmptyTitleRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "")
	createPost(t, r, "T", author.ID)

	w := doJSON(t, r, http.MethodPatch, "/api/posts/1", map[string]any{"title": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePostAuthorValidated(t *testing.T) {
	r, _ := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "")
	other := createUser(t, r, "b@x.com", "")
	createPost(t, r, "T", author.ID)

	// moving to an existing user works
	w := doJSON(t, r, http.MethodPatch, "/api/posts/1", map[string]any{"authorId": other.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var updated postResp
	decode(t, w, &updated)
	assert.Equal(t, other.ID, updated.AuthorID)

	// moving to a missing user does not
	w = doJSON(t, r, http.MethodPatch, "/api/posts/1", map[string]any{"authorId": 99})
	require.Equal(t, http.StatusNotFound, w.Code)
	var body errResp
	decode(t, w, &body)
	assert.Contains(t, body.Error, "author")
}

func TestUpdatePostNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/posts/42", map[string]any{"published": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPostIncludesAuthor(t *testing.T) {
	r, _ := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "Alice")
	createPost(t, r, "T", author.ID)

	w := doJSON(t, r, http.MethodGet, "/api/posts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var post postResp
	decode(t, w, &post)
	require.NotNil(t, post.Author)
	assert.Equal(t, "a@x.com", post.Author.Email)
}

func TestGetPostNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	r, _ := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "")
	createPost(t, r, "T", author.ID)

	w := doJSON(t, r, http.MethodDelete, "/api/posts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// deleting twice surfaces the missing record
	w = doJSON(t, r, http.MethodDelete, "/api/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSanitizeStripsScriptTags(t *testing.T) {
	r, _ := newTestRouter(t)

	author := createUser(t, r, "a@x.com", "")
	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]any{
		"title":    "safe<script>alert(1)</script>",
		"authorId": author.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var post postResp
	decode(t, w, &post)
	assert.Equal(t, "safe", post.Title)
	assert.NotContains(t, post.Title, "script")
}
