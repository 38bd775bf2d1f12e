package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateApplication = errors.New("application already exists")

type ApplicationRepository interface {
	// Create переводит нарушение уникального индекса (user_id, job_id)
	// в ErrDuplicateApplication
	Create(db *gorm.DB, application *models.Application) error
	ExistsByUserAndJob(db *gorm.DB, userID, jobID string) (bool, error)
	// ListByJob подгружает откликнувшегося пользователя
	ListByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	if err := db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ExistsByUserAndJob(db *gorm.DB, userID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepositoryImpl) ListByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("User").Where("job_id = ?", jobID).Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
