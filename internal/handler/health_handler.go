package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	diagnosticsTimeout  = 3 * time.Second
	maxCollectionsShown = 10
	maxErrorLen         = 80
)

// HealthHandler serves the root message and the diagnostics probe. Purely
// observational: every failure mode is reported in the response body with a
// 200 status, never as a 5xx.
type HealthHandler struct {
	db             *mongo.Database
	databaseURLSet bool
}

// NewHealthHandler creates a new HealthHandler. db may be nil when the
// process runs without a configured database.
func NewHealthHandler(db *mongo.Database, databaseURLSet bool) *HealthHandler {
	return &HealthHandler{db: db, databaseURLSet: databaseURLSet}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "SaaS backend running"})
}

func (h *HealthHandler) Diagnostics(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.databaseURLSet {
		resp["database_url"] = "set"
	}
	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "available"
	resp["database_name"] = h.db.Name()

	ctx, cancel := context.WithTimeout(c.Request.Context(), diagnosticsTimeout)
	defer cancel()

	if err := h.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		resp["database"] = "error: " + truncateError(err)
		c.JSON(http.StatusOK, resp)
		return
	}
	resp["connection_status"] = "connected"

	names, err := h.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		resp["database"] = "connected but error: " + truncateError(err)
		c.JSON(http.StatusOK, resp)
		return
	}
	if len(names) > maxCollectionsShown {
		names = names[:maxCollectionsShown]
	}
	resp["collections"] = names
	resp["database"] = "connected"

	c.JSON(http.StatusOK, resp)
}

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorLen {
		msg = msg[:maxErrorLen]
	}
	return msg
}

// RegisterHealthRoutes registers the root and diagnostics routes
func (h *HealthHandler) RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/test", h.Diagnostics)
}
