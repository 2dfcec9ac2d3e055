package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"appcost/cmd/fx/category_fx"
	"appcost/cmd/fx/config_fx"
	"appcost/cmd/fx/controllers_fx"
	"appcost/cmd/fx/db_fx"
	"appcost/cmd/fx/feature_fx"
	"appcost/cmd/fx/logger_fx"
	"appcost/cmd/fx/middleware_fx"
	"appcost/internal/api"
	"appcost/internal/config"
)

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		category_fx.Module,
		feature_fx.Module,
		middleware_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Provide(NewHTTPServer),
		fx.Invoke(StartServer),
	)
}

func NewHTTPServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    cfg.Addr(),
		Handler: engine,
	}
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, srv *http.Server, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server failed", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
