package response_models

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FeatureResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

type CostEstimateResponse struct {
	TotalCost float64 `json:"total_cost"`
}

type ImportSummary struct {
	CategoriesCreated int `json:"categories_created"`
	CategoriesUpdated int `json:"categories_updated"`
	FeaturesCreated   int `json:"features_created"`
	FeaturesUpdated   int `json:"features_updated"`
}
