package repository

import (
	"context"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't a closed transaction
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if err.Error() != ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
