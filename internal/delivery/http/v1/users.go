package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tarefas/internal/models"
	"github.com/adanyl0v/go-tarefas/internal/services"
)

const (
	msgUserNotFound   = "Usuário não encontrado"
	msgUserListFailed = "Erro ao buscar os usuários"
	msgUserCreateFail = "Erro ao criar o usuário"
	msgUserUpdateFail = "Erro ao atualizar o usuário"
	msgUserDeleteFail = "Erro ao excluir o usuário"
	msgUserDeleted    = "Usuário excluído com sucesso"
)

type createUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (r createUserRequest) params() services.CreateUserParams {
	return services.CreateUserParams{
		Name:  r.Name,
		Email: r.Email,
	}
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r updateUserRequest) params(id int64) services.UpdateUserParams {
	return services.UpdateUserParams{
		ID:    id,
		Name:  r.Name,
		Email: r.Email,
	}
}

func (h *handlerImpl) HandleGetUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("failed to list users")
		abort(c, newInternalError(msgUserListFailed))
		return
	}

	if len(users) == 0 {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *handlerImpl) HandleCreateUser(c *gin.Context) {
	var req createUserRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("failed to bind json")
		abort(c, newValidationError(err))
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.params())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("failed to create user")
		abort(c, newInternalError(msgUserCreateFail))
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *handlerImpl) HandleUpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("invalid user id")
		abort(c, newBadRequestError(errInvalidID.Error()))
		return
	}

	var req updateUserRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("failed to bind json")
		abort(c, newValidationError(err))
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), req.params(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			abort(c, newNotFoundError(msgUserNotFound))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("user_id", id).
			Str("request_id", requestID(c)).
			Msg("failed to update user")
		abort(c, newInternalError(msgUserUpdateFail))
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *handlerImpl) HandleDeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", requestID(c)).
			Msg("invalid user id")
		abort(c, newBadRequestError(errInvalidID.Error()))
		return
	}

	err = h.users.DeleteUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			abort(c, newNotFoundError(msgUserNotFound))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("user_id", id).
			Str("request_id", requestID(c)).
			Msg("failed to delete user")
		abort(c, newInternalError(msgUserDeleteFail))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUserDeleted})
}
