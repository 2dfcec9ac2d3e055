package services

import (
	"context"

	"go.uber.org/zap"

	"appcost/internal/models/response_models"
	"appcost/internal/repositories"
	"appcost/pkg/utils"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		log:          log.Named("category_service"),
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("listing categories", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	categoryResponses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		categoryResponses = append(categoryResponses, response_models.CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
		})
	}

	return categoryResponses, nil
}
