package request_models

import (
	"strings"

	"appcost/pkg/utils"
)

// CalculateCostRequest is bound from the query string of GET /calculate/.
// Feature ids arrive as a repeated `features[]` parameter.
type CalculateCostRequest struct {
	CategoryID string   `form:"category_id"`
	FeatureIDs []string `form:"features[]"`
}

func (r CalculateCostRequest) Validate() error {
	if strings.TrimSpace(r.CategoryID) == "" || len(r.nonEmptyFeatureIDs()) == 0 {
		return utils.ErrCategoryAndFeaturesRequired
	}
	return nil
}

// ParsedFeatureIDs returns the requested feature ids as numbers, skipping
// blank entries.
func (r CalculateCostRequest) ParsedFeatureIDs() ([]uint, error) {
	raw := r.nonEmptyFeatureIDs()
	ids := make([]uint, 0, len(raw))
	for _, s := range raw {
		id, err := utils.ParseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r CalculateCostRequest) nonEmptyFeatureIDs() []string {
	out := make([]string, 0, len(r.FeatureIDs))
	for _, s := range r.FeatureIDs {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
