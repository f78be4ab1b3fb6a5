package handler

import (
	"errors"
	"net/http"

	"github.com/saasbase/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BlogHandler handles the read-only blog endpoints
type BlogHandler struct {
	service service.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(s service.BlogService) *BlogHandler {
	return &BlogHandler{service: s}
}

func (h *BlogHandler) List(c *gin.Context) {
	summaries, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	detail, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to fetch post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// RegisterBlogRoutes registers blog routes
func (h *BlogHandler) RegisterBlogRoutes(rg *gin.RouterGroup) {
	blogGroup := rg.Group("/blog")
	{
		blogGroup.GET("", h.List)
		blogGroup.GET("/:slug", h.GetBySlug)
	}
}
