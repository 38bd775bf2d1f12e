package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// CreateApplicationRequest - отклик на вакансию.
// ResumeUrl принимается как обычная строка-ссылка, файлы не загружаются.
type CreateApplicationRequest struct {
	Job          string `json:"job" binding:"required" validate:"uuid4"`
	Fullname     string `json:"fullname" binding:"required"`
	ResumeURL    string `json:"resumeUrl" binding:"required"`
	ContactPhone string `json:"contactPhone" binding:"required"`
}

type ApplicationDTO struct {
	ID           string    `json:"id"`
	User         string    `json:"user"`
	Job          string    `json:"job"`
	Fullname     string    `json:"fullname"`
	ResumeURL    string    `json:"resumeUrl"`
	ContactPhone string    `json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ApplicantRefDTO - откликнувшийся пользователь в listApply
type ApplicantRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ApplicationWithUserDTO - отклик с данными кандидата (для владельца вакансии)
type ApplicationWithUserDTO struct {
	ID           string          `json:"id"`
	User         ApplicantRefDTO `json:"user"`
	Job          string          `json:"job"`
	Fullname     string          `json:"fullname"`
	ResumeURL    string          `json:"resumeUrl"`
	ContactPhone string          `json:"contactPhone"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func NewApplicationDTO(a *models.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:           a.ID,
		User:         a.UserID,
		Job:          a.JobID,
		Fullname:     a.Fullname,
		ResumeURL:    a.ResumeURL,
		ContactPhone: a.ContactPhone,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func NewApplicationWithUserDTO(a *models.Application) ApplicationWithUserDTO {
	d := ApplicationWithUserDTO{
		ID:           a.ID,
		User:         ApplicantRefDTO{ID: a.UserID},
		Job:          a.JobID,
		Fullname:     a.Fullname,
		ResumeURL:    a.ResumeURL,
		ContactPhone: a.ContactPhone,
		CreatedAt:    a.CreatedAt,
	}
	if a.User != nil {
		d.User.Name = a.User.Name
		d.User.Email = a.User.Email
	}
	return d
}

func NewApplicationWithUserDTOs(applications []models.Application) []ApplicationWithUserDTO {
	out := make([]ApplicationWithUserDTO, 0, len(applications))
	for i := range applications {
		out = append(out, NewApplicationWithUserDTO(&applications[i]))
	}
	return out
}
