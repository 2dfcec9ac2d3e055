package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"appcost/internal/models/db_models"
	"appcost/pkg/utils"
)

func TestCategoryService_ListCategories(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []db_models.Category{category(1, "Mobile"), category(2, "Web")}}
	svc := NewCategoryService(repo, zap.NewNop())

	got, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[0].Name != "Mobile" || got[1].ID != 2 || got[1].Name != "Web" {
		t.Fatalf("got %+v", got)
	}
}

func TestCategoryService_ListCategoriesEmpty(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{}, zap.NewNop())

	got, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestCategoryService_ListCategoriesStoreFailure(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{err: errors.New("connection refused")}, zap.NewNop())

	if _, err := svc.ListCategories(context.Background()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err = %v, want ErrDatabaseError", err)
	}
}
