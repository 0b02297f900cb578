package blog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"donorblog/internal/database"
	"donorblog/internal/domain"
	"donorblog/internal/repository"
)

func setupBlogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	handler := NewHandler(NewService(repository.NewPostRepository(db)))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))
	return router, db
}

func seedPosts(t *testing.T, db *gorm.DB) {
	t.Helper()
	posts := []domain.Post{
		{Title: "Hello", Slug: "hello", Content: "First published post", Tags: "news", Status: domain.PostPublished},
		{Title: "Donations report", Slug: "donations-report", Content: "Numbers", Tags: "news,donations", Status: domain.PostPublished},
		{Title: "Draft", Slug: "draft", Content: "Not yet", Status: domain.PostDraft},
	}
	for i := range posts {
		require.NoError(t, db.Create(&posts[i]).Error)
	}
}

type listResponse struct {
	Data struct {
		Posts []PostSummary `json:"posts"`
	} `json:"data"`
}

func TestListPosts_PublishedOnly(t *testing.T) {
	router, db := setupBlogRouter(t)
	seedPosts(t, db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var payload listResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	require.Len(t, payload.Data.Posts, 2)
	for _, p := range payload.Data.Posts {
		require.NotEqual(t, "draft", p.Slug)
	}
}

func TestListPosts_TagFilter(t *testing.T) {
	router, db := setupBlogRouter(t)
	seedPosts(t, db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts?tag=donations", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var payload listResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	require.Len(t, payload.Data.Posts, 1)
	require.Equal(t, "donations-report", payload.Data.Posts[0].Slug)
}

func TestGetPost_BySlug(t *testing.T) {
	router, db := setupBlogRouter(t)
	seedPosts(t, db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/hello", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "First published post")
}

func TestGetPost_DraftIsHidden(t *testing.T) {
	router, db := setupBlogRouter(t)
	seedPosts(t, db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/draft", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPost_Unknown(t *testing.T) {
	router, _ := setupBlogRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
