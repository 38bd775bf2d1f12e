package services

import (
	"github.com/google/uuid"

	"jobboard_backend/pkg/apperrors"
)

// ServiceContainer - контейнер всех сервисов приложения
type ServiceContainer struct {
	AuthService        AuthService
	CategoryService    CategoryService
	JobService         JobService
	ApplicationService ApplicationService
}

// parseID проверяет синтаксис идентификатора до похода в БД.
// Кривой id - это 400, а не 404: мы даже не смогли выполнить поиск.
func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidID
	}
	return nil
}
