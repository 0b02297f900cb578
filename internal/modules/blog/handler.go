package blog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"donorblog/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/posts", h.List)
	rg.GET("/posts/:slug", h.Get)
}

// List godoc
// @Summary      Published posts, newest first
// @Tags         Blog
// @Produce      json
// @Param        tag query string false "Filter by tag"
// @Param        limit query integer false "Page size (max 100)"
// @Success      200 {array} PostSummary
// @Router       /posts [get]
func (h *Handler) List(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
			if limit > 100 {
				limit = 100
			}
		}
	}
	offset := 0
	if s := c.Query("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			offset = v
		}
	}

	posts, err := h.service.List(c.Request.Context(), c.Query("tag"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load posts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

// Get godoc
// @Summary      Published post by slug
// @Tags         Blog
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} PostDetail
// @Failure      404 {string} string "not found"
// @Router       /posts/{slug} [get]
func (h *Handler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load post")
		return
	}
	response.Success(c, http.StatusOK, post)
}
