package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &role, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}

// UserExists reports whether the user store knows userID
func (s *Store) UserExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return false, wrapErr(ErrMsgFailedToCheckUser, err)
	}
	return exists, nil
}

// ListUserIDs returns every user id in ascending order
func (s *Store) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.pool.Query(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListUsers, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListUsers, err)
	}
	return ids, nil
}

// GetUserByUsername returns the user or domain.ErrUserNotFound
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT id, username, role, created_at FROM users WHERE username = $1`, username))
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, username)
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetUserByName, err)
	}
	return u, nil
}

// CreateUser inserts a user, returning the existing one when the username is taken
func (s *Store) CreateUser(ctx context.Context, username string, role domain.Role) (*domain.User, bool, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `
		INSERT INTO users (username, role) VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
		RETURNING id, username, role, created_at`,
		username, string(role)))
	if err == nil {
		return u, true, nil
	}
	if !isNoRows(err) {
		return nil, false, wrapErr(ErrMsgFailedToInsertUser, err)
	}

	existing, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
