package controllers

import (
	"github.com/gin-gonic/gin"

	"appcost/internal/services"
	"appcost/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
	}
}

// ListCategories godoc
// @Summary List categories
// @Description Fetch every app category
// @Tags Categories
// @Produce json
// @Success 200 {array} response_models.CategoryResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /categories/ [get]
func (cc *CategoriesController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories)
}
