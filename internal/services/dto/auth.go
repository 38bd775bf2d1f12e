package dto

import "jobboard_backend/internal/models"

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO - публичная информация о пользователе (без пароля)
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse - ответ на вход
type LoginResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// MeDTO - профиль текущего пользователя.
// JobApply считается на лету по таблице откликов, а не хранится.
type MeDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JobApply int64  `json:"jobApply"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
