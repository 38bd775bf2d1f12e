package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий.
// Статические сегменты (/jobs/user) имеют приоритет над /jobs/:id.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/user", authRequired, h.ListByOwner)
		jobs.GET("/user/:id", authRequired, h.OwnerDetail)
		jobs.GET("/:id", h.GetByID)
		jobs.POST("", authRequired, h.Create)
		jobs.PUT("/:id", authRequired, h.Update)
		jobs.DELETE("/:id", authRequired, h.Delete)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	caller, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Create(db, caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created",
		"newJob":  job,
	})
}

func (h *JobHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	jobs, err := h.jobService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job list",
		"jobs":    jobs,
	})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job detail",
		"job":     job,
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	caller, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Update(db, caller, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated",
		"job":     job,
	})
}

func (h *JobHandler) ListByOwner(c *gin.Context) {
	caller, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	jobs, err := h.jobService.ListByOwner(db, caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Owner job list",
		"job":     jobs,
	})
}

func (h *JobHandler) OwnerDetail(c *gin.Context) {
	caller, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.GetOwnerDetail(db, caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Owner job detail",
		"job":     job,
	})
}

func (h *JobHandler) Delete(c *gin.Context) {
	caller, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.SoftDelete(db, caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted (soft delete)",
	})
}
