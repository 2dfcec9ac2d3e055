package services

import (
	"context"

	"go.uber.org/zap"

	"appcost/internal/models/request_models"
	"appcost/internal/models/response_models"
	"appcost/internal/repositories"
	"appcost/pkg/utils"
)

// HourlyRate converts estimated hours into cost, in currency units per hour.
const HourlyRate = 10

type EstimateServiceInterface interface {
	CalculateCost(ctx context.Context, req request_models.CalculateCostRequest) (response_models.CostEstimateResponse, error)
}

type EstimateService struct {
	featureRepo repositories.FeatureRepository
	log         *zap.Logger
}

func NewEstimateService(featureRepo repositories.FeatureRepository, log *zap.Logger) EstimateServiceInterface {
	return &EstimateService{
		featureRepo: featureRepo,
		log:         log.Named("estimate_service"),
	}
}

// CalculateCost sums the hours of the selected features and applies
// HourlyRate. The category id must be present but is otherwise unused: a
// feature from another category still counts.
func (s *EstimateService) CalculateCost(ctx context.Context, req request_models.CalculateCostRequest) (response_models.CostEstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return response_models.CostEstimateResponse{}, err
	}

	featureIDs, err := req.ParsedFeatureIDs()
	if err != nil {
		return response_models.CostEstimateResponse{}, err
	}

	features, err := s.featureRepo.FindByIDs(ctx, featureIDs)
	if err != nil {
		s.log.Error("loading selected features", zap.Uints("feature_ids", featureIDs), zap.Error(err))
		return response_models.CostEstimateResponse{}, utils.ErrDatabaseError
	}

	var totalHours float64
	for _, feature := range features {
		totalHours += feature.Hours
	}

	return response_models.CostEstimateResponse{TotalCost: totalHours * HourlyRate}, nil
}
