package routes

import (
	"net/http"

	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Пути фиксированы контрактом API: /auth/*, /category, /jobs, /applyjob.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	userRepo repositories.UserRepository,
) {
	// Health probe
	ginRouter.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API OK")
	})

	authRequired := middleware.AuthMiddleware(userRepo)

	api := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authRequired)
		appHandlers.CategoryHandler.RegisterRoutes(api, authRequired)
		appHandlers.JobHandler.RegisterRoutes(api, authRequired)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authRequired)
	}
}
