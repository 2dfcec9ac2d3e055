package services

import (
	"context"

	"go.uber.org/zap"

	"appcost/internal/models/request_models"
	"appcost/internal/models/response_models"
	"appcost/internal/repositories"
	"appcost/pkg/utils"
)

type FeatureServiceInterface interface {
	ListFeatures(ctx context.Context, req request_models.ListFeaturesRequest) ([]response_models.FeatureResponse, error)
}

type FeatureService struct {
	featureRepo repositories.FeatureRepository
	log         *zap.Logger
}

func NewFeatureService(featureRepo repositories.FeatureRepository, log *zap.Logger) FeatureServiceInterface {
	return &FeatureService{
		featureRepo: featureRepo,
		log:         log.Named("feature_service"),
	}
}

func (s *FeatureService) ListFeatures(ctx context.Context, req request_models.ListFeaturesRequest) ([]response_models.FeatureResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	categoryID, err := utils.ParseID(req.CategoryID)
	if err != nil {
		return nil, err
	}

	features, err := s.featureRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		s.log.Error("listing features", zap.Uint("category_id", categoryID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	featureResponses := make([]response_models.FeatureResponse, 0, len(features))
	for _, feature := range features {
		featureResponses = append(featureResponses, response_models.FeatureResponse{
			ID:    feature.ID,
			Name:  feature.Name,
			Hours: feature.Hours,
		})
	}

	return featureResponses, nil
}
