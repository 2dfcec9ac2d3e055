package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"appcost/internal/api/controllers"
	"appcost/internal/config"
	"appcost/internal/infra"
)

var Module = fx.Provide(
	provideDB, providePinger)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, log)
			return nil
		},
	})
	return db, nil
}

func providePinger(db *gorm.DB) controllers.Pinger {
	return func(ctx context.Context) error {
		return infra.Ping(ctx, db)
	}
}
