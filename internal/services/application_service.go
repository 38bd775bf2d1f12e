package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Create(db *gorm.DB, caller *models.User, req *dto.CreateApplicationRequest) (*dto.ApplicationDTO, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Create - отклик на вакансию.
// Порядок проверок: вакансия существует и не удалена -> не своя ->
// нет дубля. Проверка дубля - быстрый путь; источником истины служит
// уникальный индекс (user_id, job_id), его нарушение дает тот же 400.
func (s *ApplicationServiceImpl) Create(db *gorm.DB, caller *models.User, req *dto.CreateApplicationRequest) (*dto.ApplicationDTO, error) {
	if err := parseID(req.Job); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindActiveByID(db, req.Job)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.OwnerID == caller.ID {
		return nil, apperrors.ErrOwnJobApplication
	}

	exists, err := s.applicationRepo.ExistsByUserAndJob(db, caller.ID, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		UserID:       caller.ID,
		JobID:        job.ID,
		Fullname:     req.Fullname,
		ResumeURL:    req.ResumeURL,
		ContactPhone: req.ContactPhone,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewApplicationDTO(application)
	return &resp, nil
}
