package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

/*
Хелперы хендлерных тестов: роутер с заглушками вместо сервисов и
аутентификации. Сервисные заглушки программируются пофункционально,
нефункциональные вызовы в тесте означают ошибку маршрутизации.
*/

type stubAuthService struct {
	registerFn func(req *dto.RegisterRequest) (*dto.UserDTO, error)
	loginFn    func(req *dto.LoginRequest) (*dto.LoginResponse, error)
	getMeFn    func(caller *models.User) (*dto.MeDTO, error)
}

func (s *stubAuthService) Register(_ *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	return s.registerFn(req)
}

func (s *stubAuthService) Login(_ *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginFn(req)
}

func (s *stubAuthService) GetMe(_ *gorm.DB, caller *models.User) (*dto.MeDTO, error) {
	return s.getMeFn(caller)
}

type stubCategoryService struct {
	requireAdminFn func(caller *models.User) error
	createFn       func(caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error)
	listAllFn      func() ([]dto.CategoryDTO, error)
	getByIDFn      func(id string) (*dto.CategoryDetailDTO, error)
	updateFn       func(caller *models.User, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryDTO, error)
	softDeleteFn   func(caller *models.User, id string) error
}

func (s *stubCategoryService) RequireAdmin(caller *models.User) error {
	if s.requireAdminFn == nil {
		return nil
	}
	return s.requireAdminFn(caller)
}

func (s *stubCategoryService) Create(_ *gorm.DB, caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	return s.createFn(caller, req)
}

func (s *stubCategoryService) ListAll(_ *gorm.DB) ([]dto.CategoryDTO, error) {
	return s.listAllFn()
}

func (s *stubCategoryService) GetByID(_ *gorm.DB, id string) (*dto.CategoryDetailDTO, error) {
	return s.getByIDFn(id)
}

func (s *stubCategoryService) Update(_ *gorm.DB, caller *models.User, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryDTO, error) {
	return s.updateFn(caller, id, req)
}

func (s *stubCategoryService) SoftDelete(_ *gorm.DB, caller *models.User, id string) error {
	return s.softDeleteFn(caller, id)
}

type stubJobService struct {
	createFn         func(caller *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	listAllFn        func() ([]dto.JobDTO, error)
	getByIDFn        func(id string) (*dto.JobDetailDTO, error)
	updateFn         func(caller *models.User, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	listByOwnerFn    func(caller *models.User) ([]models.Job, error)
	getOwnerDetailFn func(caller *models.User, id string) (*dto.OwnerJobDetailDTO, error)
	softDeleteFn     func(caller *models.User, id string) error
}

func (s *stubJobService) Create(_ *gorm.DB, caller *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	return s.createFn(caller, req)
}

func (s *stubJobService) ListAll(_ *gorm.DB) ([]dto.JobDTO, error) {
	return s.listAllFn()
}

func (s *stubJobService) GetByID(_ *gorm.DB, id string) (*dto.JobDetailDTO, error) {
	return s.getByIDFn(id)
}

func (s *stubJobService) Update(_ *gorm.DB, caller *models.User, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	return s.updateFn(caller, id, req)
}

func (s *stubJobService) ListByOwner(_ *gorm.DB, caller *models.User) ([]models.Job, error) {
	return s.listByOwnerFn(caller)
}

func (s *stubJobService) GetOwnerDetail(_ *gorm.DB, caller *models.User, id string) (*dto.OwnerJobDetailDTO, error) {
	return s.getOwnerDetailFn(caller, id)
}

func (s *stubJobService) SoftDelete(_ *gorm.DB, caller *models.User, id string) error {
	return s.softDeleteFn(caller, id)
}

type stubApplicationService struct {
	createFn func(caller *models.User, req *dto.CreateApplicationRequest) (*dto.ApplicationDTO, error)
}

func (s *stubApplicationService) Create(_ *gorm.DB, caller *models.User, req *dto.CreateApplicationRequest) (*dto.ApplicationDTO, error) {
	return s.createFn(caller, req)
}

// newTestRouter собирает роутер с переданными сервисами.
// currentUser != nil эмулирует пройденную аутентификацию.
func newTestRouter(svcs *services.ServiceContainer, currentUser *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	base := NewBaseHandler(validator.New())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{})
		c.Next()
	})

	authRequired := func(c *gin.Context) {
		if currentUser == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing or invalid"})
			return
		}
		c.Set(contextkeys.CurrentUserKey, currentUser)
		c.Next()
	}

	api := router.Group("")
	if svcs.AuthService != nil {
		NewAuthHandler(base, svcs.AuthService).RegisterRoutes(api, authRequired)
	}
	if svcs.CategoryService != nil {
		NewCategoryHandler(base, svcs.CategoryService).RegisterRoutes(api, authRequired)
	}
	if svcs.JobService != nil {
		NewJobHandler(base, svcs.JobService).RegisterRoutes(api, authRequired)
	}
	if svcs.ApplicationService != nil {
		NewApplicationHandler(base, svcs.ApplicationService).RegisterRoutes(api, authRequired)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Name:      "Alice",
		Email:     "alice@test.com",
		Role:      models.UserRoleUser,
	}
}
