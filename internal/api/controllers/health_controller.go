package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"appcost/internal/models/response_models"
	"appcost/pkg/utils"
)

// Pinger is satisfied by anything that can report store reachability.
type Pinger func(ctx context.Context) error

type HealthController struct {
	ping Pinger
}

func NewHealthController(ping Pinger) *HealthController {
	return &HealthController{ping: ping}
}

func (hc *HealthController) Live(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{Status: "ok"})
}

func (hc *HealthController) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := hc.ping(ctx); err != nil {
		utils.Logger(c).Warn("readiness check failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	c.JSON(http.StatusOK, response_models.HealthResponse{Status: "ready"})
}
