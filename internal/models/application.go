package models

// Application - отклик пользователя на вакансию.
// Составной уникальный индекс (user_id, job_id) закрывает гонку двойного
// отклика на уровне хранилища; проверка в сервисе остается быстрым путем.
type Application struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"user"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`

	JobID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"job"`
	Job   *Job   `gorm:"foreignKey:JobID" json:"-"`

	Fullname     string `gorm:"not null" json:"fullname"`
	ResumeURL    string `gorm:"not null" json:"resumeUrl"`
	ContactPhone string `gorm:"not null" json:"contactPhone"`
}
