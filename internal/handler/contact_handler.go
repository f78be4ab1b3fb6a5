package handler

import (
	"errors"
	"net/http"

	"github.com/saasbase/backend/internal/model"
	"github.com/saasbase/backend/internal/repository"
	"github.com/saasbase/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.Submit(c.Request.Context(), &req); err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("contact submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RegisterContactRoutes registers contact routes
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}
