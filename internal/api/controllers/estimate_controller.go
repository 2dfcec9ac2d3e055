package controllers

import (
	"github.com/gin-gonic/gin"

	"appcost/internal/models/request_models"
	"appcost/internal/services"
	"appcost/pkg/utils"
)

type EstimateController struct {
	estimateService services.EstimateServiceInterface
}

func NewEstimateController(estimateService services.EstimateServiceInterface) *EstimateController {
	return &EstimateController{
		estimateService: estimateService,
	}
}

// CalculateCost godoc
// @Summary Estimate the cost of a feature selection
// @Description total_cost = sum of the selected features' hours * 10
// @Tags Estimate
// @Produce json
// @Param category_id query int true "Category ID"
// @Param features[] query []int true "Feature IDs" collectionFormat(multi)
// @Success 200 {object} response_models.CostEstimateResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /calculate/ [get]
func (ec *EstimateController) CalculateCost(c *gin.Context) {
	var req request_models.CalculateCostRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	estimate, err := ec.estimateService.CalculateCost(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, estimate)
}
