package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// CreateJobRequest - создание вакансии.
// Владелец в запросе не принимается: он всегда берется из
// аутентифицированного пользователя.
type CreateJobRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Remote       *bool   `json:"remote" binding:"required"`
	Salary       float64 `json:"salary" binding:"required"`
	JobType      string  `json:"jobType" validate:"omitempty,is-job-type"`
	Requirements string  `json:"requirements" binding:"required"`
	Benefits     string  `json:"benefits" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Category     string  `json:"category" binding:"required" validate:"uuid4"`
}

// UpdateJobRequest - частичное обновление вакансии (только владелец).
// Поля-указатели: nil означает "не трогать".
type UpdateJobRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Remote       *bool    `json:"remote"`
	Salary       *float64 `json:"salary"`
	JobType      *string  `json:"jobType" validate:"omitempty,is-job-type"`
	Requirements *string  `json:"requirements"`
	Benefits     *string  `json:"benefits"`
	City         *string  `json:"city"`
	Address      *string  `json:"address"`
	Phone        *string  `json:"phone"`
	Category     *string  `json:"category" validate:"omitempty,uuid4"`
}

// CategoryRefDTO - ссылка на категорию в списках вакансий
type CategoryRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OwnerRefDTO - ссылка на владельца вакансии
type OwnerRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JobDTO - вакансия в публичном списке: категория свернута до {id, name}
type JobDTO struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Remote       bool           `json:"remote"`
	Salary       float64        `json:"salary"`
	JobType      models.JobType `json:"jobType"`
	Requirements string         `json:"requirements"`
	Benefits     string         `json:"benefits"`
	City         string         `json:"city"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`
	Category     CategoryRefDTO `json:"category"`
	Owner        string         `json:"owner"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// JobDetailDTO - публичная детальная карточка: категория и владелец развернуты
type JobDetailDTO struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Remote       bool           `json:"remote"`
	Salary       float64        `json:"salary"`
	JobType      models.JobType `json:"jobType"`
	Requirements string         `json:"requirements"`
	Benefits     string         `json:"benefits"`
	City         string         `json:"city"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`
	Category     CategoryRefDTO `json:"category"`
	Owner        OwnerRefDTO    `json:"owner"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// JobWithOwnerDTO - вакансия внутри listJobs категории
type JobWithOwnerDTO struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Remote       bool           `json:"remote"`
	Salary       float64        `json:"salary"`
	JobType      models.JobType `json:"jobType"`
	Requirements string         `json:"requirements"`
	Benefits     string         `json:"benefits"`
	City         string         `json:"city"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`
	Category     string         `json:"category"`
	Owner        OwnerRefDTO    `json:"owner"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// OwnerJobDetailDTO - вакансия владельца со списком откликов
type OwnerJobDetailDTO struct {
	models.Job
	ListApply []ApplicationWithUserDTO `json:"listApply"`
}

func NewJobDTO(j *models.Job) JobDTO {
	d := JobDTO{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Remote:       j.Remote,
		Salary:       j.Salary,
		JobType:      j.JobType,
		Requirements: j.Requirements,
		Benefits:     j.Benefits,
		City:         j.City,
		Address:      j.Address,
		Phone:        j.Phone,
		Category:     CategoryRefDTO{ID: j.CategoryID},
		Owner:        j.OwnerID,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if j.Category != nil {
		d.Category.Name = j.Category.Name
	}
	return d
}

func NewJobDTOs(jobs []models.Job) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobDTO(&jobs[i]))
	}
	return out
}

func NewJobDetailDTO(j *models.Job) JobDetailDTO {
	d := JobDetailDTO{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Remote:       j.Remote,
		Salary:       j.Salary,
		JobType:      j.JobType,
		Requirements: j.Requirements,
		Benefits:     j.Benefits,
		City:         j.City,
		Address:      j.Address,
		Phone:        j.Phone,
		Category:     CategoryRefDTO{ID: j.CategoryID},
		Owner:        OwnerRefDTO{ID: j.OwnerID},
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if j.Category != nil {
		d.Category.Name = j.Category.Name
	}
	if j.Owner != nil {
		d.Owner.Name = j.Owner.Name
		d.Owner.Email = j.Owner.Email
	}
	return d
}

func NewJobWithOwnerDTO(j *models.Job) JobWithOwnerDTO {
	d := JobWithOwnerDTO{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Remote:       j.Remote,
		Salary:       j.Salary,
		JobType:      j.JobType,
		Requirements: j.Requirements,
		Benefits:     j.Benefits,
		City:         j.City,
		Address:      j.Address,
		Phone:        j.Phone,
		Category:     j.CategoryID,
		Owner:        OwnerRefDTO{ID: j.OwnerID},
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if j.Owner != nil {
		d.Owner.Name = j.Owner.Name
		d.Owner.Email = j.Owner.Email
	}
	return d
}

func NewJobWithOwnerDTOs(jobs []models.Job) []JobWithOwnerDTO {
	out := make([]JobWithOwnerDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobWithOwnerDTO(&jobs[i]))
	}
	return out
}
