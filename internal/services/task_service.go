package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tarefas/internal/models"
	"github.com/adanyl0v/go-tarefas/internal/store"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	store  store.Handle
}

func NewTaskService(
	logger zerolog.Logger,
	handle store.Handle,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		store:  handle,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       title,
       description,
       status,
       user_id
FROM tb_task
`
	res, err := s.store.Execute(ctx, selectTasksQuery)
	if err != nil {
		storeErrorEvent(s.logger.Error(), err).
			Msg("failed to select tasks")
		return nil, err
	}

	tasks := make([]*models.Task, 0, len(res.Rows))
	for _, rec := range res.Rows {
		task, err := models.TaskFromRecord(rec)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to decode task")
			return nil, err
		}
		tasks = append(tasks, task)
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")

	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	const insertTaskQuery = `
INSERT INTO tb_task (title,
                     description,
                     status,
                     user_id)
VALUES ($1, $2, $3, $4)
RETURNING id, title, description, status, user_id
`
	res, err := s.store.Execute(
		ctx,
		insertTaskQuery,
		params.Title,
		params.Description,
		params.Status,
		params.UserID,
	)
	if err != nil {
		storeErrorEvent(s.logger.Error(), err).
			Msg("failed to insert task")
		return nil, err
	}

	task, err := s.singleTask(res)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	const updateTaskQuery = `
UPDATE tb_task
SET title = $1,
    description = $2,
    status = $3,
    user_id = $4
WHERE id = $5
RETURNING id, title, description, status, user_id
`
	res, err := s.store.Execute(
		ctx,
		updateTaskQuery,
		params.Title,
		params.Description,
		params.Status,
		params.UserID,
		params.ID,
	)
	if err != nil {
		storeErrorEvent(s.logger.Error(), err).
			Int64("task_id", params.ID).
			Msg("failed to update task")
		return nil, err
	}
	if res.RowCount == 0 {
		s.logger.Warn().
			Int64("task_id", params.ID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	task, err := s.singleTask(res)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	const deleteTaskQuery = `
DELETE FROM tb_task
WHERE id = $1
RETURNING id
`
	res, err := s.store.Execute(
		ctx,
		deleteTaskQuery,
		id,
	)
	if err != nil {
		storeErrorEvent(s.logger.Error(), err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if res.RowCount == 0 {
		s.logger.Warn().
			Int64("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) singleTask(res *store.Result) (*models.Task, error) {
	if len(res.Rows) == 0 {
		err := fmt.Errorf("%w: statement returned no rows", models.ErrMalformedRecord)
		s.logger.Error().
			Err(err).
			Int64("affected", res.RowCount).
			Msg("missing returned task")
		return nil, err
	}

	task, err := models.TaskFromRecord(res.Rows[0])
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode task")
		return nil, err
	}
	return task, nil
}
