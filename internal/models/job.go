package models

type Job struct {
	BaseModel
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `gorm:"not null" json:"description"`
	Remote       bool    `gorm:"not null" json:"remote"`
	Salary       float64 `gorm:"not null" json:"salary"`
	JobType      JobType `gorm:"type:varchar(20);not null;default:'fulltime'" json:"jobType"`
	Requirements string  `gorm:"not null" json:"requirements"`
	Benefits     string  `gorm:"not null" json:"benefits"`
	City         string  `gorm:"not null" json:"city"`
	Address      string  `gorm:"not null" json:"address"`
	Phone        string  `gorm:"not null" json:"phone"`

	CategoryID string    `gorm:"type:uuid;not null;index" json:"category"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`

	// Владелец назначается один раз при создании из аутентифицированного
	// пользователя и больше не меняется.
	OwnerID string `gorm:"type:uuid;not null;index" json:"owner"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"-"`

	IsDeleted bool `gorm:"not null;default:false;index" json:"isDeleted"`
}
