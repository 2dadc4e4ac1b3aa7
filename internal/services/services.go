package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-tarefas/internal/models"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")
)

type TaskService interface {
	// ListTasks returns every task in the order the store yields them.
	// An empty collection is an empty, non-nil slice.
	ListTasks(ctx context.Context) ([]*models.Task, error)

	// CreateTask inserts a task and returns it with its store-assigned ID.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// UpdateTask replaces every mutable field of the task with the given ID.
	//
	// It returns ErrTaskNotFound if no task has that ID.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask removes the task with the given ID.
	//
	// It returns ErrTaskNotFound if no task has that ID.
	DeleteTask(ctx context.Context, id int64) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)

	CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error)

	// UpdateUser returns ErrUserNotFound if no user has the given ID.
	UpdateUser(ctx context.Context, params UpdateUserParams) (*models.User, error)

	// DeleteUser returns ErrUserNotFound if no user has the given ID.
	DeleteUser(ctx context.Context, id int64) error
}

type CreateTaskParams struct {
	Title       string
	Description *string
	Status      *string
	UserID      *int64
}

// UpdateTaskParams leaves Title nullable: an absent title still reaches
// the store, so an unknown ID reports ErrTaskNotFound whatever the body.
type UpdateTaskParams struct {
	ID          int64
	Title       *string
	Description *string
	Status      *string
	UserID      *int64
}

type CreateUserParams struct {
	Name  string
	Email string
}

type UpdateUserParams struct {
	ID    int64
	Name  *string
	Email *string
}
