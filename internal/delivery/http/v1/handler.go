package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tarefas/internal/services"
	"github.com/adanyl0v/go-tarefas/internal/store"
)

type Handler interface {
	HandleGetTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleGetUsers(c *gin.Context)
	HandleCreateUser(c *gin.Context)
	HandleUpdateUser(c *gin.Context)
	HandleDeleteUser(c *gin.Context)

	HandleHealth(c *gin.Context)

	HandleRequestID(c *gin.Context)
	HandleAccessLog(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
	users  services.UserService
	store  store.Handle
}

func New(
	logger zerolog.Logger,
	storeHandle store.Handle,
	taskService services.TaskService,
	userService services.UserService,
) Handler {
	registerJSONFieldNames()
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
		users:  userService,
		store:  storeHandle,
	}
}

// RegisterRoutes mounts every endpoint on router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/healthz", h.HandleHealth)

	tasks := router.Group("/tarefas")
	tasks.GET("", h.HandleGetTasks)
	tasks.POST("", h.HandleCreateTask)
	tasks.PUT("/:id", h.HandleUpdateTask)
	tasks.DELETE("/:id", h.HandleDeleteTask)

	users := router.Group("/usuarios")
	users.GET("", h.HandleGetUsers)
	users.POST("", h.HandleCreateUser)
	users.PUT("/:id", h.HandleUpdateUser)
	users.DELETE("/:id", h.HandleDeleteUser)
}
