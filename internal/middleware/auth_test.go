package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users   map[string]*models.User
	findErr error // если задана, FindByID возвращает ее как сбой хранилища
}

func (s *stubUserRepo) Create(_ *gorm.DB, user *models.User) error { return nil }

func (s *stubUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func setupAuthRouter(repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Заглушка вместо DBMiddleware: кладем пустой *gorm.DB
	router.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{})
		c.Next()
	})
	router.GET("/protected", AuthMiddleware(repo), func(c *gin.Context) {
		val, _ := c.Get(contextkeys.CurrentUserKey)
		user := val.(*models.User)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return router
}

func setAuthTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 3600
	config.AppConfig = cfg
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	setAuthTestConfig(t)
	router := setupAuthRouter(&stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	setAuthTestConfig(t)
	router := setupAuthRouter(&stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	setAuthTestConfig(t)
	router := setupAuthRouter(&stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	setAuthTestConfig(t)
	router := setupAuthRouter(&stubUserRepo{users: map[string]*models.User{}})

	// Токен валиден, но пользователя уже нет
	token, err := auth.GenerateToken(uuid.NewString())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestAuthMiddleware_StoreFailure(t *testing.T) {
	setAuthTestConfig(t)

	// Сбой хранилища при валидном токене - это 500, а не 401
	router := setupAuthRouter(&stubUserRepo{findErr: errors.New("connection refused")})

	token, err := auth.GenerateToken(uuid.NewString())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestAuthMiddleware_Success(t *testing.T) {
	setAuthTestConfig(t)

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Name:      "Alice",
		Email:     "alice@test.com",
		Role:      models.UserRoleUser,
	}
	router := setupAuthRouter(&stubUserRepo{users: map[string]*models.User{user.ID: user}})

	token, err := auth.GenerateToken(user.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@test.com")
}
