package validator

import (
	"log"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка конфигурации - не запускаемся
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-job-type': тип занятости вакансии
	mustRegister("is-job-type", validateJobType)
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения - зона ответственности 'required'
	}

	switch models.JobType(value) {
	case models.JobTypeFulltime, models.JobTypeParttime, models.JobTypeContract:
		return true
	default:
		return false
	}
}
