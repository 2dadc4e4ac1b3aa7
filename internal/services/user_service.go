package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tarefas/internal/models"
	"github.com/adanyl0v/go-tarefas/internal/store"
)

type userServiceImpl struct {
	logger zerolog.Logger
	store  store.Handle
}

func NewUserService(
	logger zerolog.Logger,
	handle store.Handle,
) UserService {
	return &userServiceImpl{
		logger: logger,
		store:  handle,
	}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	const selectUsersQuery = `
SELECT id,
       name,
       email
FROM tb_user
`
	res, err := s.store.Execute(ctx, selectUsersQuery)
	if err != nil {
		storeErrorEvent(s.logger.Error(), err).
			Msg("failed to select users")
		return nil, err
	}

	users := make([]*models.User, 0, len(res.Rows))
	for _, rec := range res.Rows {
		user, err := models.UserFromRecord(rec)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to decode user")
			return nil, err
		}
		users = append(users, user)
	}
	s.logger.Debug().
		Int("count", len(users)).
		Msg("selected users")

	return users, nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	const insertUserQuery = `
INSERT INTO tb_user (name,
                     email)
VALUES ($1, $2)
RETURNING id, name, email
`
	res, err := s.store.Execute(
		ctx,
		insertUserQuery,
		params.Name,
		params.Email,
	)
	if err != nil {
		storeErrorEvent(s.logger.Error(), err).
			Msg("failed to insert user")
		return nil, err
	}

	user, err := s.singleUser(res)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Msg("created user")
	return user, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, params UpdateUserParams) (*models.User, error) {
	const updateUserQuery = `
UPDATE tb_user
SET name = $1,
    email = $2
WHERE id = $3
RETURNING id, name, email
`
	res, err := s.store.Execute(
		ctx,
		updateUserQuery,
		params.Name,
		params.Email,
		params.ID,
	)
	if err != nil {
		storeErrorEvent(s.logger.Error(), err).
			Int64("user_id", params.ID).
			Msg("failed to update user")
		return nil, err
	}
	if res.RowCount == 0 {
		s.logger.Warn().
			Int64("user_id", params.ID).
			Msg("user not found")
		return nil, ErrUserNotFound
	}

	user, err := s.singleUser(res)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Msg("updated user")
	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	const deleteUserQuery = `
DELETE FROM tb_user
WHERE id = $1
RETURNING id
`
	res, err := s.store.Execute(
		ctx,
		deleteUserQuery,
		id,
	)
	if err != nil {
		storeErrorEvent(s.logger.Error(), err).
			Int64("user_id", id).
			Msg("failed to delete user")
		return err
	}
	if res.RowCount == 0 {
		s.logger.Warn().
			Int64("user_id", id).
			Msg("user not found")
		return ErrUserNotFound
	}

	s.logger.Info().
		Int64("user_id", id).
		Msg("deleted user")
	return nil
}

func (s *userServiceImpl) singleUser(res *store.Result) (*models.User, error) {
	if len(res.Rows) == 0 {
		err := fmt.Errorf("%w: statement returned no rows", models.ErrMalformedRecord)
		s.logger.Error().
			Err(err).
			Int64("affected", res.RowCount).
			Msg("missing returned user")
		return nil, err
	}

	user, err := models.UserFromRecord(res.Rows[0])
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode user")
		return nil, err
	}
	return user, nil
}
