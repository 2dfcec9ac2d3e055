package db_models

// Feature is a unit of work with an hours estimate. It always belongs to
// exactly one Category.
type Feature struct {
	BaseModel
	Name       string  `gorm:"not null"`
	Hours      float64 `gorm:"not null;default:0;check:chk_features_hours_non_negative,hours >= 0"`
	CategoryID uint    `gorm:"index;not null"`
}
