package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"appcost/internal/models/db_models"
	"appcost/internal/repositories"
)

type fakeCategoryRepo struct {
	categories []db_models.Category
	err        error
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]db_models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Name == name {
			return &f.categories[i], nil
		}
	}
	return nil, f.err
}

func (f *fakeCategoryRepo) Save(ctx context.Context, category *db_models.Category) error {
	return f.err
}

func (f *fakeCategoryRepo) DeleteAll(ctx context.Context) error {
	return f.err
}

func (f *fakeCategoryRepo) WithTx(tx *gorm.DB) repositories.CategoryRepository {
	return f
}

type fakeFeatureRepo struct {
	features  []db_models.Feature
	err       error
	lastIDs   []uint
	callCount int
}

func (f *fakeFeatureRepo) FindByCategory(ctx context.Context, categoryID uint) ([]db_models.Feature, error) {
	f.callCount++
	if f.err != nil {
		return nil, f.err
	}
	out := []db_models.Feature{}
	for _, feat := range f.features {
		if feat.CategoryID == categoryID {
			out = append(out, feat)
		}
	}
	return out, nil
}

func (f *fakeFeatureRepo) FindByIDs(ctx context.Context, ids []uint) ([]db_models.Feature, error) {
	f.callCount++
	f.lastIDs = ids
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := []db_models.Feature{}
	for _, feat := range f.features {
		if wanted[feat.ID] {
			out = append(out, feat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFeatureRepo) FindByCategoryAndName(ctx context.Context, categoryID uint, name string) (*db_models.Feature, error) {
	for i := range f.features {
		if f.features[i].CategoryID == categoryID && f.features[i].Name == name {
			return &f.features[i], nil
		}
	}
	return nil, f.err
}

func (f *fakeFeatureRepo) Save(ctx context.Context, feature *db_models.Feature) error {
	return f.err
}

func (f *fakeFeatureRepo) DeleteAll(ctx context.Context) error {
	return f.err
}

func (f *fakeFeatureRepo) WithTx(tx *gorm.DB) repositories.FeatureRepository {
	return f
}

func feature(id uint, name string, hours float64, categoryID uint) db_models.Feature {
	f := db_models.Feature{Name: name, Hours: hours, CategoryID: categoryID}
	f.ID = id
	return f
}

func category(id uint, name string) db_models.Category {
	c := db_models.Category{Name: name}
	c.ID = id
	return c
}
