package handlers

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate_Created(t *testing.T) {
	categorySvc := &stubCategoryService{
		createFn: func(caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
			return &dto.CategoryDTO{ID: uuid.NewString(), Name: req.Name, Description: req.Description}, nil
		},
	}
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, testUser())

	w := doJSON(t, router, http.MethodPost, "/category", map[string]interface{}{
		"name":        "IT",
		"description": "Tech jobs",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Category created", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "IT", data["name"])
}

func TestCategoryCreate_Forbidden(t *testing.T) {
	categorySvc := &stubCategoryService{
		createFn: func(caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
			return nil, apperrors.ErrCategoryAccessDenied
		},
	}
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, testUser())

	w := doJSON(t, router, http.MethodPost, "/category", map[string]interface{}{
		"name":        "IT",
		"description": "Tech jobs",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You do not have access to manage categories", decodeBody(t, w)["message"])
}

func TestCategoryCreate_ForbiddenBeforeValidation(t *testing.T) {
	// Не-админ с пустым телом получает 403, а не ошибки валидации:
	// гейт привилегии стоит до разбора тела
	categorySvc := &stubCategoryService{
		requireAdminFn: func(caller *models.User) error {
			return apperrors.ErrCategoryAccessDenied
		},
		createFn: func(caller *models.User, req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
			t.Fatal("service must not be called for a non-admin caller")
			return nil, nil
		},
	}
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, testUser())

	w := doJSON(t, router, http.MethodPost, "/category", map[string]interface{}{})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You do not have access to manage categories", decodeBody(t, w)["message"])
}

func TestCategoryUpdate_ForbiddenBeforeValidation(t *testing.T) {
	categorySvc := &stubCategoryService{
		requireAdminFn: func(caller *models.User) error {
			return apperrors.ErrCategoryAccessDenied
		},
		updateFn: func(caller *models.User, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryDTO, error) {
			t.Fatal("service must not be called for a non-admin caller")
			return nil, nil
		},
	}
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, testUser())

	w := doJSON(t, router, http.MethodPut, "/category/"+uuid.NewString(), map[string]interface{}{})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCategoryCreate_Unauthenticated(t *testing.T) {
	router := newTestRouter(&services.ServiceContainer{CategoryService: &stubCategoryService{}}, nil)

	w := doJSON(t, router, http.MethodPost, "/category", map[string]interface{}{
		"name":        "IT",
		"description": "Tech jobs",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCategoryList_OK(t *testing.T) {
	categorySvc := &stubCategoryService{
		listAllFn: func() ([]dto.CategoryDTO, error) {
			return []dto.CategoryDTO{{ID: uuid.NewString(), Name: "IT"}}, nil
		},
	}
	// Чтение категорий не требует аутентификации
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, nil)

	w := doJSON(t, router, http.MethodGet, "/category", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "All categories", body["message"])
	require.Len(t, body["data"], 1)
}

func TestCategoryGetByID_WithJobs(t *testing.T) {
	categoryID := uuid.NewString()
	categorySvc := &stubCategoryService{
		getByIDFn: func(id string) (*dto.CategoryDetailDTO, error) {
			require.Equal(t, categoryID, id)
			return &dto.CategoryDetailDTO{
				CategoryDTO: dto.CategoryDTO{ID: id, Name: "IT"},
				ListJobs:    []dto.JobWithOwnerDTO{{ID: uuid.NewString(), Title: "Go dev"}},
			}, nil
		},
	}
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, nil)

	w := doJSON(t, router, http.MethodGet, "/category/"+categoryID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Category detail", body["message"])
	category := body["category"].(map[string]interface{})
	require.Len(t, category["listJobs"], 1)
}

func TestCategoryGetByID_MalformedID(t *testing.T) {
	categorySvc := &stubCategoryService{
		getByIDFn: func(id string) (*dto.CategoryDetailDTO, error) {
			return nil, apperrors.ErrInvalidID
		},
	}
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, nil)

	w := doJSON(t, router, http.MethodGet, "/category/42", nil)

	// Кривой id - 400, а не 404
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", decodeBody(t, w)["message"])
}

func TestCategoryDelete_OK(t *testing.T) {
	categorySvc := &stubCategoryService{
		softDeleteFn: func(caller *models.User, id string) error { return nil },
	}
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, testUser())

	w := doJSON(t, router, http.MethodDelete, "/category/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Category deleted (soft delete)", decodeBody(t, w)["message"])
}

func TestCategoryDelete_AlreadyDeleted(t *testing.T) {
	categorySvc := &stubCategoryService{
		softDeleteFn: func(caller *models.User, id string) error {
			return apperrors.ErrCategoryAlreadyDeleted
		},
	}
	router := newTestRouter(&services.ServiceContainer{CategoryService: categorySvc}, testUser())

	w := doJSON(t, router, http.MethodDelete, "/category/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Category is already deleted", decodeBody(t, w)["message"])
}
