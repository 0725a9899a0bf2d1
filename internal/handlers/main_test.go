package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"agora/internal/db"
	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/router"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupAPI boots the full HTTP stack against a fresh in-memory database.
func setupAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Use(gdb))

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("agora_session", store))
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

// client is one browser-like actor with its own cookie jar.
type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newClient(t *testing.T, server *httptest.Server) *client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{t: t, base: server.URL, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp.StatusCode, payload
}

func (c *client) signup(username string) map[string]interface{} {
	c.t.Helper()
	status, payload := c.do(http.MethodPost, "/auth/signup", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(c.t, http.StatusCreated, status)
	return payload
}

func seedCategory(t *testing.T, slug string) uint {
	t.Helper()
	category := models.Category{Name: "Category " + slug, Slug: slug}
	require.NoError(t, db.DB.Create(&category).Error)
	return category.ID
}

func setRole(t *testing.T, username, role string) {
	t.Helper()
	result := db.DB.Model(&models.User{}).Where("username = ?", username).Update("role", role)
	require.NoError(t, result.Error)
	require.EqualValues(t, 1, result.RowsAffected)
}

func userID(t *testing.T, username string) uint {
	t.Helper()
	var user models.User
	require.NoError(t, db.DB.Where("username = ?", username).First(&user).Error)
	return user.ID
}

// createThread posts a thread through the API and returns its id.
func (c *client) createThread(categoryID uint, title string) uint {
	c.t.Helper()
	status, payload := c.do(http.MethodPost, "/threads", map[string]interface{}{
		"title":      title,
		"content":    "Some content for " + title,
		"categoryId": categoryID,
	})
	require.Equal(c.t, http.StatusCreated, status)
	return objectID(c.t, payload, "thread")
}

// createComment posts a top-level comment and returns its id.
func (c *client) createComment(threadID uint, content string) uint {
	c.t.Helper()
	status, payload := c.do(http.MethodPost, "/comments", map[string]interface{}{
		"threadId": threadID,
		"content":  content,
	})
	require.Equal(c.t, http.StatusCreated, status)
	return objectID(c.t, payload, "comment")
}

// objectID digs payload[key]["id"] out of a decoded JSON response.
func objectID(t *testing.T, payload map[string]interface{}, key string) uint {
	t.Helper()
	obj, ok := payload[key].(map[string]interface{})
	require.True(t, ok, fmt.Sprintf("response has no %q object: %v", key, payload))
	id, ok := obj["id"].(float64)
	require.True(t, ok)
	return uint(id)
}

func items(t *testing.T, payload map[string]interface{}, key string) []interface{} {
	t.Helper()
	list, ok := payload[key].([]interface{})
	require.True(t, ok, fmt.Sprintf("response has no %q list: %v", key, payload))
	return list
}
