package db_models

// Category groups app features that are estimated together
// (e.g. "E-commerce", "Social").
type Category struct {
	BaseModel
	Name     string    `gorm:"uniqueIndex;not null"`
	Features []Feature `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
