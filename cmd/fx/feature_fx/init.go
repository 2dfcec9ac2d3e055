package feature_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"appcost/internal/repositories"
	"appcost/internal/services"
)

var Module = fx.Provide(
	provideFeatureRepo, provideFeatureService, provideEstimateService)

func provideFeatureRepo(db *gorm.DB) repositories.FeatureRepository {
	return repositories.NewFeatureRepository(db)
}

func provideFeatureService(featureRepo repositories.FeatureRepository, log *zap.Logger) services.FeatureServiceInterface {
	return services.NewFeatureService(featureRepo, log)
}

func provideEstimateService(featureRepo repositories.FeatureRepository, log *zap.Logger) services.EstimateServiceInterface {
	return services.NewEstimateService(featureRepo, log)
}
