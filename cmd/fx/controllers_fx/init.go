package controllers_fx

import (
	"go.uber.org/fx"

	"appcost/internal/api"
	"appcost/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewFeaturesController),
	fx.Provide(controllers.NewEstimateController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideControllers))

func provideControllers(
	categories *controllers.CategoriesController,
	features *controllers.FeaturesController,
	estimate *controllers.EstimateController,
	health *controllers.HealthController) api.Controllers {
	return api.Controllers{
		Categories: categories,
		Features:   features,
		Estimate:   estimate,
		Health:     health,
	}
}
