package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"appcost/internal/api/controllers"
	"appcost/internal/config"
	"appcost/pkg/middleware"
)

// Controllers groups every handler the router mounts.
type Controllers struct {
	Categories *controllers.CategoriesController
	Features   *controllers.FeaturesController
	Estimate   *controllers.EstimateController
	Health     *controllers.HealthController
}

// NewRouter builds the gin engine. ClientIP only honours X-Forwarded-For from
// cfg.TrustedProxies, so the rate limiter keys on the real peer by default.
func NewRouter(cfg *config.Config, log *zap.Logger, limiter *middleware.RateLimiter, ctrls Controllers) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.GET("/healthz", ctrls.Health.Live)
	r.GET("/readyz", ctrls.Health.Ready)

	limited := middleware.RateLimitMiddleware(limiter)
	RegisterRoutes(r.Group("/", limited), ctrls)
	RegisterRoutes(r.Group("/api", limited), ctrls)

	return r, nil
}

func RegisterRoutes(r *gin.RouterGroup, ctrls Controllers) {
	r.GET("/categories/", ctrls.Categories.ListCategories)
	r.GET("/features/", ctrls.Features.ListFeatures)
	r.GET("/calculate/", ctrls.Estimate.CalculateCost)
}
