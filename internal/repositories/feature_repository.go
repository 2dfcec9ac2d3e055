package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"appcost/internal/models/db_models"
)

type FeatureRepository interface {
	FindByCategory(ctx context.Context, categoryID uint) ([]db_models.Feature, error)
	FindByIDs(ctx context.Context, ids []uint) ([]db_models.Feature, error)
	FindByCategoryAndName(ctx context.Context, categoryID uint, name string) (*db_models.Feature, error)
	Save(ctx context.Context, feature *db_models.Feature) error
	DeleteAll(ctx context.Context) error
	WithTx(tx *gorm.DB) FeatureRepository
}

type featureRepository struct {
	db *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepository{db: db}
}

func (r *featureRepository) WithTx(tx *gorm.DB) FeatureRepository {
	return &featureRepository{db: tx}
}

func (r *featureRepository) FindByCategory(ctx context.Context, categoryID uint) ([]db_models.Feature, error) {
	features := []db_models.Feature{}
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&features).Error
	if err != nil {
		return nil, err
	}
	return features, nil
}

// FindByIDs returns the features whose id is in ids. Unknown ids are
// skipped and duplicated ids yield a single row.
func (r *featureRepository) FindByIDs(ctx context.Context, ids []uint) ([]db_models.Feature, error) {
	features := []db_models.Feature{}
	if len(ids) == 0 {
		return features, nil
	}

	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&features).Error
	if err != nil {
		return nil, err
	}
	return features, nil
}

func (r *featureRepository) FindByCategoryAndName(ctx context.Context, categoryID uint, name string) (*db_models.Feature, error) {
	var feature db_models.Feature
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND name = ?", categoryID, name).
		First(&feature).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feature, nil
}

func (r *featureRepository) Save(ctx context.Context, feature *db_models.Feature) error {
	return r.db.WithContext(ctx).Save(feature).Error
}

func (r *featureRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&db_models.Feature{}).Error
}
