package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей.
// Уникальные индексы (email, (user_id, job_id)) создаются здесь же.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Job{},
		&models.Application{},
	)
}
