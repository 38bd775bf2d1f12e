package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// CreateCategoryRequest - создание категории (только админ)
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateCategoryRequest - частичное обновление: перезаписываются
// только переданные поля
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CategoryDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryDetailDTO - категория вместе с активными вакансиями в ней
type CategoryDetailDTO struct {
	CategoryDTO
	ListJobs []JobWithOwnerDTO `json:"listJobs"`
}

func NewCategoryDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsDeleted:   c.IsDeleted,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewCategoryDTOs(categories []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryDTO(&categories[i]))
	}
	return out
}
