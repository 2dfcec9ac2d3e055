package request_models

import (
	"strings"

	"appcost/pkg/utils"
)

// ListFeaturesRequest is bound from the query string of GET /features/.
type ListFeaturesRequest struct {
	CategoryID string `form:"category_id"`
}

func (r ListFeaturesRequest) Validate() error {
	if strings.TrimSpace(r.CategoryID) == "" {
		return utils.ErrCategoryIDRequired
	}
	return nil
}
