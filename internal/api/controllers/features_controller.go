package controllers

import (
	"github.com/gin-gonic/gin"

	"appcost/internal/models/request_models"
	"appcost/internal/services"
	"appcost/pkg/utils"
)

type FeaturesController struct {
	featureService services.FeatureServiceInterface
}

func NewFeaturesController(featureService services.FeatureServiceInterface) *FeaturesController {
	return &FeaturesController{
		featureService: featureService,
	}
}

// ListFeatures godoc
// @Summary List features of a category
// @Tags Features
// @Produce json
// @Param category_id query int true "Category ID"
// @Success 200 {array} response_models.FeatureResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /features/ [get]
func (fc *FeaturesController) ListFeatures(c *gin.Context) {
	var req request_models.ListFeaturesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	features, err := fc.featureService.ListFeatures(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, features)
}
