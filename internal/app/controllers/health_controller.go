package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthController reports service and database health
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{db: db}
}

// Health pings the database and reports overall service status
func (c *HealthController) Health(ctx *gin.Context) {
	dbStatus := "UP"
	status := http.StatusOK

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if c.db == nil || c.db.Ping(pingCtx) != nil {
		dbStatus = "DOWN"
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, gin.H{
		"status":   dbStatus,
		"service":  "trackpro",
		"database": dbStatus,
		"time":     time.Now().Format(time.RFC3339),
	})
}
