package catalog_fx

import (
	"go.uber.org/fx"

	"appcost/internal/services"
)

var Module = fx.Provide(services.NewCatalogService)
