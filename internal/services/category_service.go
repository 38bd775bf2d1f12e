package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	// RequireAdmin - гейт привилегии. Хендлеры зовут его до разбора тела:
	// не-админ получает 403 раньше любых ошибок валидации.
	RequireAdmin(caller *models.User) error
	Create(db *gorm.DB, caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error)
	ListAll(db *gorm.DB) ([]dto.CategoryDTO, error)
	GetByID(db *gorm.DB, id string) (*dto.CategoryDetailDTO, error)
	Update(db *gorm.DB, caller *models.User, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryDTO, error)
	SoftDelete(db *gorm.DB, caller *models.User, id string) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	jobRepo      repositories.JobRepository
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	jobRepo repositories.JobRepository,
) CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		jobRepo:      jobRepo,
	}
}

// RequireAdmin - управлять категориями может только админ
func (s *CategoryServiceImpl) RequireAdmin(caller *models.User) error {
	if caller.Role != models.UserRoleAdmin {
		return apperrors.ErrCategoryAccessDenied
	}
	return nil
}

func (s *CategoryServiceImpl) Create(db *gorm.DB, caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	if err := s.RequireAdmin(caller); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsDeleted:   false,
	}

	if err := s.categoryRepo.Create(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCategoryDTO(category)
	return &resp, nil
}

func (s *CategoryServiceImpl) ListAll(db *gorm.DB) ([]dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCategoryDTOs(categories), nil
}

// GetByID - детали категории вместе с активными вакансиями в ней
// (у каждой вакансии развернут владелец).
func (s *CategoryServiceImpl) GetByID(db *gorm.DB, id string) (*dto.CategoryDetailDTO, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindActiveByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.jobRepo.ListActiveByCategory(db, category.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CategoryDetailDTO{
		CategoryDTO: dto.NewCategoryDTO(category),
		ListJobs:    dto.NewJobWithOwnerDTOs(jobs),
	}, nil
}

// Update перезаписывает только переданные поля name/description.
// Уже удаленная категория для update не существует (404).
func (s *CategoryServiceImpl) Update(db *gorm.DB, caller *models.User, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryDTO, error) {
	if err := s.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := parseID(id); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindActiveByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categoryRepo.Update(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCategoryDTO(category)
	return &resp, nil
}

// SoftDelete выставляет флаг isDeleted.
// Повторное удаление - 400, это единственная операция, различающая
// "нет" и "уже удалена".
func (s *CategoryServiceImpl) SoftDelete(db *gorm.DB, caller *models.User, id string) error {
	if err := s.RequireAdmin(caller); err != nil {
		return err
	}
	if err := parseID(id); err != nil {
		return err
	}

	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}

	if category.IsDeleted {
		return apperrors.ErrCategoryAlreadyDeleted
	}

	category.IsDeleted = true
	if err := s.categoryRepo.Update(db, category); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
