package services

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetMe(db *gorm.DB, caller *models.User) (*dto.MeDTO, error)
}

type AuthServiceImpl struct {
	userRepo        repositories.UserRepository
	applicationRepo repositories.ApplicationRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	applicationRepo repositories.ApplicationRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
	}
}

// Register - регистрация нового пользователя.
// Роль всегда "user": привилегии не выводятся из данных запроса.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleUser,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserDTO(user)
	return &resp, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		User:  dto.NewUserDTO(user),
		Token: token,
	}, nil
}

// GetMe - профиль текущего пользователя.
// jobApply - живой подсчет собственных откликов пользователя,
// хранимого счетчика нет.
func (s *AuthServiceImpl) GetMe(db *gorm.DB, caller *models.User) (*dto.MeDTO, error) {
	count, err := s.applicationRepo.CountByUser(db, caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MeDTO{
		ID:       caller.ID,
		Name:     caller.Name,
		Email:    caller.Email,
		JobApply: count,
	}, nil
}
