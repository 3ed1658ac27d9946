package repository

import (
	"context"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// User defines the interface for the user store
type User interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateUser inserts a user unless the username is taken. created is false
	// when the existing user is returned.
	CreateUser(ctx context.Context, username string, role domain.Role) (user *domain.User, created bool, err error)
}
