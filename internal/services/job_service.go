package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	Create(db *gorm.DB, caller *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	ListAll(db *gorm.DB) ([]dto.JobDTO, error)
	GetByID(db *gorm.DB, id string) (*dto.JobDetailDTO, error)
	Update(db *gorm.DB, caller *models.User, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	ListByOwner(db *gorm.DB, caller *models.User) ([]models.Job, error)
	GetOwnerDetail(db *gorm.DB, caller *models.User, id string) (*dto.OwnerJobDetailDTO, error)
	SoftDelete(db *gorm.DB, caller *models.User, id string) error
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	categoryRepo    repositories.CategoryRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	categoryRepo repositories.CategoryRepository,
	applicationRepo repositories.ApplicationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		categoryRepo:    categoryRepo,
		applicationRepo: applicationRepo,
	}
}

// Create - новая вакансия.
// Владелец всегда caller: owner из тела запроса не принимается вовсе.
// Категория должна существовать и быть не удаленной на момент создания;
// последующий soft-delete категории уже созданные вакансии не трогает.
func (s *JobServiceImpl) Create(db *gorm.DB, caller *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	if _, err := s.categoryRepo.FindActiveByID(db, req.Category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	jobType := models.JobType(req.JobType)
	if jobType == "" {
		jobType = models.JobTypeFulltime
	}

	job := &models.Job{
		Title:        req.Title,
		Description:  req.Description,
		Remote:       *req.Remote,
		Salary:       req.Salary,
		JobType:      jobType,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		City:         req.City,
		Address:      req.Address,
		Phone:        req.Phone,
		CategoryID:   req.Category,
		OwnerID:      caller.ID,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListAll(db *gorm.DB) ([]dto.JobDTO, error) {
	jobs, err := s.jobRepo.ListActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobDTOs(jobs), nil
}

func (s *JobServiceImpl) GetByID(db *gorm.DB, id string) (*dto.JobDetailDTO, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindActiveByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobDetailDTO(job)
	return &resp, nil
}

// Update - частичное обновление вакансии владельцем.
// Новая категория (если прислана и отличается) перепроверяется по
// актуальным не удаленным категориям.
func (s *JobServiceImpl) Update(db *gorm.DB, caller *models.User, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindActiveByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.OwnerID != caller.ID {
		return nil, apperrors.ErrNotJobOwner
	}

	if req.Category != nil && *req.Category != job.CategoryID {
		if _, err := s.categoryRepo.FindActiveByID(db, *req.Category); err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		job.CategoryID = *req.Category
		job.Category = nil
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Remote != nil {
		job.Remote = *req.Remote
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}
	if req.City != nil {
		job.City = *req.City
	}
	if req.Address != nil {
		job.Address = *req.Address
	}
	if req.Phone != nil {
		job.Phone = *req.Phone
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListByOwner(db *gorm.DB, caller *models.User) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListActiveByOwner(db, caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// GetOwnerDetail - вакансия владельца со списком откликов.
// Чужая, удаленная и несуществующая вакансии дают один и тот же 404.
func (s *JobServiceImpl) GetOwnerDetail(db *gorm.DB, caller *models.User, id string) (*dto.OwnerJobDetailDTO, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindActiveByIDAndOwner(db, id, caller.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.ListByJob(db, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.OwnerJobDetailDTO{
		Job:       *job,
		ListApply: dto.NewApplicationWithUserDTOs(applications),
	}, nil
}

func (s *JobServiceImpl) SoftDelete(db *gorm.DB, caller *models.User, id string) error {
	if err := parseID(id); err != nil {
		return err
	}

	job, err := s.jobRepo.FindActiveByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if job.OwnerID != caller.ID {
		return apperrors.ErrNotJobOwner
	}

	job.IsDeleted = true
	if err := s.jobRepo.Update(db, job); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
