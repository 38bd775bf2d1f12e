package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	// ListActive возвращает все не удаленные вакансии с категорией
	ListActive(db *gorm.DB) ([]models.Job, error)
	// FindActiveByID подгружает категорию и владельца
	FindActiveByID(db *gorm.DB, id string) (*models.Job, error)
	// ListActiveByCategory подгружает владельца (для listJobs категории)
	ListActiveByCategory(db *gorm.DB, categoryID string) ([]models.Job, error)
	// ListActiveByOwner возвращает "сырые" вакансии без связей
	ListActiveByOwner(db *gorm.DB, ownerID string) ([]models.Job, error)
	// FindActiveByIDAndOwner: чужая вакансия неотличима от несуществующей
	FindActiveByIDAndOwner(db *gorm.DB, id, ownerID string) (*models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) ListActive(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Scopes(notDeleted).Preload("Category").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Scopes(notDeleted).Preload("Category").Preload("Owner").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListActiveByCategory(db *gorm.DB, categoryID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Scopes(notDeleted).Preload("Owner").
		Where("category_id = ?", categoryID).Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) ListActiveByOwner(db *gorm.DB, ownerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Scopes(notDeleted).Where("owner_id = ?", ownerID).Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindActiveByIDAndOwner(db *gorm.DB, id, ownerID string) (*models.Job, error) {
	var job models.Job
	err := db.Scopes(notDeleted).
		First(&job, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}
