package handlers

// AppHandlers - контейнер всех хендлеров приложения
type AppHandlers struct {
	AuthHandler        *AuthHandler
	CategoryHandler    *CategoryHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
}
