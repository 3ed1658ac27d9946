package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/metrics"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

// withTx runs operation inside one serializable transaction. Commit, rollback
// and retries after repository.ErrTxConflict are handled here; operation must
// be safe to run again from scratch.
func (s *service) withTx(ctx context.Context, op string, operation func(tx repository.InventoryTx) error) error {
	log := logger.FromContext(ctx)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = RetryInitialInterval
	policy.MaxInterval = RetryMaxInterval
	policy.MaxElapsedTime = RetryMaxElapsed

	attempt := 0
	run := func() error {
		attempt++
		err := s.runTx(ctx, operation)
		if err == nil {
			return nil
		}
		if errors.Is(err, repository.ErrTxConflict) {
			metrics.TxRetries.WithLabelValues(op).Inc()
			log.Debug(LogMsgTxConflictRetry, "operation", op, "attempt", attempt, "error", err)
			return err
		}
		return backoff.Permanent(err)
	}

	bounded := backoff.WithMaxRetries(policy, uint64(s.opts.MaxRetries))
	return backoff.Retry(run, backoff.WithContext(bounded, ctx))
}

func (s *service) runTx(ctx context.Context, operation func(tx repository.InventoryTx) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := operation(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// getItemCached resolves an item through the LRU cache
func (s *service) getItemCached(ctx context.Context, itemID int64) (*domain.Item, error) {
	if item, ok := s.itemCache.Get(itemID); ok {
		return &item, nil
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	s.itemCache.Add(itemID, *item)
	return item, nil
}

func (s *service) requireAdmin(caller domain.Caller) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return nil
}

func (s *service) requireAccess(caller domain.Caller, userID int64) error {
	if !caller.CanActFor(userID) {
		return fmt.Errorf("%w: user %d", domain.ErrForbidden, userID)
	}
	return nil
}

func (s *service) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
	}
	return nil
}

// publish sends evt to the bus. Subscriber failures are logged, never
// returned, because the state change has already committed.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// endSpan records err on span and ends it
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// resultLabel maps an operation error to its metrics label
func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return metrics.ResultInsufficient
	case domain.IsValidation(err), errors.Is(err, domain.ErrAlreadyEquipped), errors.Is(err, domain.ErrNotEquipped):
		return metrics.ResultInvalid
	case domain.IsNotFound(err):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrForbidden):
		return metrics.ResultForbidden
	case errors.Is(err, repository.ErrTxConflict):
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}
