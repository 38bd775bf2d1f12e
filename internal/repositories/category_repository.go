package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	Create(db *gorm.DB, category *models.Category) error
	ListActive(db *gorm.DB) ([]models.Category, error)
	// FindActiveByID не видит soft-deleted категории
	FindActiveByID(db *gorm.DB, id string) (*models.Category, error)
	// FindByID видит и удаленные - нужен для повторного delete (400)
	FindByID(db *gorm.DB, id string) (*models.Category, error)
	Update(db *gorm.DB, category *models.Category) error
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

func (r *CategoryRepositoryImpl) ListActive(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Scopes(notDeleted).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.Scopes(notDeleted).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Update(db *gorm.DB, category *models.Category) error {
	return db.Save(category).Error
}
