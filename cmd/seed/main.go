// Command seed loads a YAML catalog of categories and features into the
// store. It is the write path for the data the API serves.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"appcost/cmd/fx/catalog_fx"
	"appcost/cmd/fx/category_fx"
	"appcost/cmd/fx/config_fx"
	"appcost/cmd/fx/db_fx"
	"appcost/cmd/fx/feature_fx"
	"appcost/cmd/fx/logger_fx"
	"appcost/internal/models/request_models"
	"appcost/internal/services"
)

type options struct {
	file    string
	replace bool
	timeout time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "catalog.yaml", "YAML catalog to import")
	flag.BoolVar(&opts.replace, "replace", false, "delete existing categories and features first")
	flag.DurationVar(&opts.timeout, "timeout", time.Minute, "import deadline")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	catalog, err := loadCatalog(opts.file)
	if err != nil {
		return err
	}

	app := fx.New(
		appOptions(),
		fx.Supply(catalog, opts),
		fx.Invoke(runImport),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStop()
	return app.Stop(stopCtx)
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		category_fx.Module,
		feature_fx.Module,
		catalog_fx.Module,
	)
}

func loadCatalog(path string) (request_models.CatalogImport, error) {
	var catalog request_models.CatalogImport

	raw, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("read catalog: %w", err)
	}
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return catalog, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := catalog.Validate(); err != nil {
		return catalog, err
	}
	return catalog, nil
}

func runImport(lc fx.Lifecycle, svc services.CatalogServiceInterface, catalog request_models.CatalogImport, opts options, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			summary, err := svc.Import(ctx, catalog, opts.replace)
			if err != nil {
				return err
			}
			log.Info("seed finished",
				zap.String("file", opts.file),
				zap.Int("categories_created", summary.CategoriesCreated),
				zap.Int("categories_updated", summary.CategoriesUpdated),
				zap.Int("features_created", summary.FeaturesCreated),
				zap.Int("features_updated", summary.FeaturesUpdated))
			return nil
		},
	})
}
