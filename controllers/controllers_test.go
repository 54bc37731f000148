package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/croftbar/blogadmin/config"
	"github.com/croftbar/blogadmin/models"
	"github.com/croftbar/blogadmin/routes"
)

type userResp struct {
	ID    uint       `json:"id"`
	Email string     `json:"email"`
	Name  *string    `json:"name"`
	Posts []postResp `json:"posts"`
}

type postResp struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Published bool      `json:"published"`
	AuthorID  uint      `json:"authorId"`
	Author    *userResp `json:"author"`
}

type errResp struct {
	Error string `json:"error"`
}

// newTestRouter wires the real router against a fresh in-memory sqlite
// database. Each test gets its own database name so state never leaks.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.AppConfig{
		GinMode:            "test",
		AllowedOrigins:     []string{"*"},
		RateLimitPerMinute: 100000,
		DBDriver:           "sqlite",
		DatabaseURI:        fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel:           "silent",
	}

	db, err := config.OpenDatabase(cfg, &models.User{}, &models.Post{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDatabase(db) })

	return routes.SetupRouter(db, cfg), db
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func createUser(t *testing.T, r http.Handler, email, name string) userResp {
	t.Helper()
	body := map[string]any{"email": email}
	if name != "" {
		body["name"] = name
	}
	w := doJSON(t, r, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	var user userResp
	decode(t, w, &user)
	return user
}

func createPost(t *testing.T, r http.Handler, title string, authorID uint) postResp {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]any{
		"title":    title,
		"authorId": authorID,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	var post postResp
	decode(t, w, &post)
	return post
}
