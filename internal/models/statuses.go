package models

// UserRole - роль пользователя.
// Привилегированные операции (категории) доступны только админу;
// роль назначается при регистрации и не зависит от имени пользователя.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// JobType - тип занятости вакансии
type JobType string

const (
	JobTypeFulltime JobType = "fulltime"
	JobTypeParttime JobType = "parttime"
	JobTypeContract JobType = "contract"
)
