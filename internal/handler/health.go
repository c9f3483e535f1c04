package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const readyTimeout = 2 * time.Second

type HealthHandler struct {
	db        *gorm.DB
	startTime time.Time
	version   string
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"0.1.0"`
	Uptime  int64  `json:"uptime" example:"42"`
}

type DBStatus struct {
	Status string `json:"status" example:"up"`
	Error  string `json:"error,omitempty"`
}

type ReadyResponse struct {
	HealthResponse
	DB DBStatus `json:"db"`
}

func NewHealthHandler(db *gorm.DB, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

func (h *HealthHandler) status(s string) HealthResponse {
	return HealthResponse{
		Status:  s,
		Version: h.version,
		Uptime:  int64(time.Since(h.startTime).Seconds()),
	}
}

// Health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.status("ok"))
}

// Ready godoc
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  ReadyResponse
// @Failure  503  {object}  ReadyResponse
// @Router   /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ReadyResponse{
			HealthResponse: h.status("error"),
			DB:             DBStatus{Status: "unknown", Error: "failed to get underlying DB"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("database ping failed")

		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			HealthResponse: h.status("unhealthy"),
			DB:             DBStatus{Status: "down", Error: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		HealthResponse: h.status("ready"),
		DB:             DBStatus{Status: "up"},
	})
}
