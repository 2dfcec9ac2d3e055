package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"appcost/internal/infra"
	"appcost/internal/models/db_models"
	"appcost/internal/models/request_models"
	"appcost/internal/models/response_models"
	"appcost/internal/repositories"
)

// CatalogServiceInterface is the administrative write path for categories
// and features. The HTTP API never writes.
type CatalogServiceInterface interface {
	Import(ctx context.Context, catalog request_models.CatalogImport, replace bool) (response_models.ImportSummary, error)
}

type CatalogService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepository
	featureRepo  repositories.FeatureRepository
	log          *zap.Logger
}

func NewCatalogService(
	db *gorm.DB,
	categoryRepo repositories.CategoryRepository,
	featureRepo repositories.FeatureRepository,
	log *zap.Logger) CatalogServiceInterface {
	return &CatalogService{
		db:           db,
		categoryRepo: categoryRepo,
		featureRepo:  featureRepo,
		log:          log.Named("catalog_service"),
	}
}

// Import upserts categories by name and features by (category, name) in a
// single transaction. With replace set, existing rows are removed first.
func (s *CatalogService) Import(ctx context.Context, catalog request_models.CatalogImport, replace bool) (response_models.ImportSummary, error) {
	var summary response_models.ImportSummary

	if err := catalog.Validate(); err != nil {
		return summary, err
	}

	tx, err := infra.StartTransaction(ctx, s.db)
	if err != nil {
		return summary, err
	}

	err = s.importTx(ctx, tx, catalog, replace, &summary)
	if err = infra.ReleaseTransaction(tx, err); err != nil {
		s.log.Error("catalog import failed", zap.Error(err))
		return response_models.ImportSummary{}, err
	}

	s.log.Info("catalog imported",
		zap.Bool("replace", replace),
		zap.Int("categories_created", summary.CategoriesCreated),
		zap.Int("categories_updated", summary.CategoriesUpdated),
		zap.Int("features_created", summary.FeaturesCreated),
		zap.Int("features_updated", summary.FeaturesUpdated))

	return summary, nil
}

func (s *CatalogService) importTx(
	ctx context.Context,
	tx *gorm.DB,
	catalog request_models.CatalogImport,
	replace bool,
	summary *response_models.ImportSummary) error {

	categories := s.categoryRepo.WithTx(tx)
	features := s.featureRepo.WithTx(tx)

	if replace {
		if err := features.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete features: %w", err)
		}
		if err := categories.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete categories: %w", err)
		}
	}

	for _, in := range catalog.Categories {
		name := strings.TrimSpace(in.Name)

		category, err := categories.FindByName(ctx, name)
		if err != nil {
			return fmt.Errorf("find category %q: %w", name, err)
		}
		if category == nil {
			category = &db_models.Category{Name: name}
			summary.CategoriesCreated++
		} else {
			summary.CategoriesUpdated++
		}
		if err := categories.Save(ctx, category); err != nil {
			return fmt.Errorf("save category %q: %w", name, err)
		}

		for _, f := range in.Features {
			featureName := strings.TrimSpace(f.Name)

			feature, err := features.FindByCategoryAndName(ctx, category.ID, featureName)
			if err != nil {
				return fmt.Errorf("find feature %q: %w", featureName, err)
			}
			if feature == nil {
				feature = &db_models.Feature{Name: featureName, CategoryID: category.ID}
				summary.FeaturesCreated++
			} else {
				summary.FeaturesUpdated++
			}
			feature.Hours = f.Hours

			if err := features.Save(ctx, feature); err != nil {
				return fmt.Errorf("save feature %q: %w", featureName, err)
			}
		}
	}

	return nil
}
