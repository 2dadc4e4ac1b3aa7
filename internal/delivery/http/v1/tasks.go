package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tarefas/internal/models"
	"github.com/adanyl0v/go-tarefas/internal/services"
)

const (
	msgTaskNotFound   = "Tarefa não encontrada"
	msgTaskListFailed = "Erro ao buscar as tarefas"
	msgTaskCreateFail = "Erro ao criar a tarefa"
	msgTaskUpdateFail = "Erro ao atualizar a tarefa"
	msgTaskDeleteFail = "Erro ao excluir a tarefa"
	msgTaskDeleted    = "Tarefa excluída com sucesso"
)

type createTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	UserID      *int64  `json:"user_id"`
}

func (r createTaskRequest) params() services.CreateTaskParams {
	return services.CreateTaskParams{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		UserID:      r.UserID,
	}
}

// updateTaskRequest requires nothing, so an unknown id answers 404 no
// matter which fields the body carries.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	UserID      *int64  `json:"user_id"`
}

func (r updateTaskRequest) params(id int64) services.UpdateTaskParams {
	return services.UpdateTaskParams{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		UserID:      r.UserID,
	}
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("failed to list tasks")
		abort(c, newInternalError(msgTaskListFailed))
		return
	}

	if len(tasks) == 0 {
		tasks = []*models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("failed to bind json")
		abort(c, newValidationError(err))
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), req.params())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("failed to create task")
		abort(c, newInternalError(msgTaskCreateFail))
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidID.Error()))
		return
	}

	var req updateTaskRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("failed to bind json")
		abort(c, newValidationError(err))
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), req.params(id))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(msgTaskNotFound))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", id).
			Str("request_id", requestID(c)).
			Msg("failed to update task")
		abort(c, newInternalError(msgTaskUpdateFail))
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidID.Error()))
		return
	}

	err = h.tasks.DeleteTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(msgTaskNotFound))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", id).
			Str("request_id", requestID(c)).
			Msg("failed to delete task")
		abort(c, newInternalError(msgTaskDeleteFail))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgTaskDeleted})
}
