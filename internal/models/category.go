package models

type Category struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	IsDeleted   bool   `gorm:"not null;default:false;index" json:"isDeleted"`
}
