package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"appcost/internal/models/db_models"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]db_models.Category, error)
	FindByName(ctx context.Context, name string) (*db_models.Category, error)
	Save(ctx context.Context, category *db_models.Category) error
	DeleteAll(ctx context.Context) error
	WithTx(tx *gorm.DB) CategoryRepository
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) WithTx(tx *gorm.DB) CategoryRepository {
	return &categoryRepository{db: tx}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]db_models.Category, error) {
	categories := []db_models.Category{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByName returns nil, nil when no category has that name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Save(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Omit("Features").Save(category).Error
}

func (r *categoryRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&db_models.Category{}).Error
}
