package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

// RegisterRoutes регистрирует маршруты категорий.
// Чтение публичное, мутации только для аутентифицированного админа.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	category := rg.Group("/category")
	{
		category.GET("", h.List)
		category.GET("/:id", h.GetByID)
		category.POST("", authRequired, h.Create)
		category.PUT("/:id", authRequired, h.Update)
		category.DELETE("/:id", authRequired, h.Delete)
	}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	caller, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	// Привилегия проверяется до разбора тела: не-админ получает 403,
	// а не ошибки валидации
	if err := h.categoryService.RequireAdmin(caller); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	category, err := h.categoryService.Create(db, caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Category created",
		"data":    category,
	})
}

func (h *CategoryHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	categories, err := h.categoryService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All categories",
		"data":    categories,
	})
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	category, err := h.categoryService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category detail",
		"category": category,
	})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	caller, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.categoryService.RequireAdmin(caller); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	category, err := h.categoryService.Update(db, caller, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category updated",
		"data":    category,
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	caller, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.categoryService.SoftDelete(db, caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted (soft delete)",
	})
}
