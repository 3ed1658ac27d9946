package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
)

// GetUserStats returns the stat ledger row of userID
func (s *service) GetUserStats(ctx context.Context, caller domain.Caller, userID int64) (*domain.UserStats, error) {
	if err := s.requireAccess(caller, userID); err != nil {
		return nil, err
	}
	return s.repo.GetStats(ctx, userID)
}

// ProvisionUser creates a user in the user store, or returns the existing user
// with that name. user.created is published only on first creation. Stats are
// ensured on every call, so provisioning again repairs a user whose stats
// initialization failed.
func (s *service) ProvisionUser(ctx context.Context, caller domain.Caller, username string, role domain.Role) (*domain.User, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyUsername)
	case len(username) > MaxUsernameLength:
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgLongUsername)
	}
	if role == "" {
		role = domain.RolePlayer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrValidation, ErrMsgInvalidRole, role)
	}

	user, created, err := s.repo.CreateUser(ctx, username, role)
	if err != nil {
		return nil, err
	}
	if created {
		logger.FromContext(ctx).Info(LogMsgUserProvisioned, "user_id", user.ID, "username", user.Username, "role", user.Role)
		s.publish(ctx, event.NewUserCreatedEvent(*user))
	}

	if err := s.EnsureInitialized(ctx, user.ID); err != nil {
		return user, fmt.Errorf("%s %d: %w", ErrMsgStatsInitFailed, user.ID, err)
	}
	return user, nil
}

// EnsureInitialized gives userID default stats if it has none. Calling it
// again is a no-op.
func (s *service) EnsureInitialized(ctx context.Context, userID int64) error {
	created, err := s.repo.EnsureStats(ctx, userID)
	if err != nil {
		return err
	}
	if created {
		logger.FromContext(ctx).Info(LogMsgStatsInitialized, "user_id", userID)
	}
	return nil
}

// InitializeAllStats is the install-time batch that gives every user without
// stats the defaults.
func (s *service) InitializeAllStats(ctx context.Context) (int64, error) {
	n, err := s.repo.InitializeMissingStats(ctx)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info(LogMsgStatsBatchDone, "initialized", n)
	return n, nil
}
