package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hanlinworks/zhiguan/pkg/composables"
)

// WithPool places the database pool into every request context.
func WithPool(pool *pgxpool.Pool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(composables.WithPool(r.Context(), pool)))
		})
	}
}

// WithTransaction wraps the request in a database transaction the
// handler sees through the context. The outcome follows the response
// status: an error status or a panic rolls back, anything else commits.
// A handler that answers 4xx/5xx partway through a multi-entity write
// therefore never leaves partial rows behind.
func WithTransaction() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pool, err := composables.UsePool(r.Context())
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			tx, err := pool.Begin(r.Context())
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			settled := false
			defer func() {
				if settled {
					return
				}
				// Reached on panic or on a failed commit.
				if err := tx.Rollback(r.Context()); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
					composables.UseLogger(r.Context()).WithError(err).Error("failed to rollback transaction")
				}
			}()

			wrapped := &responseCaptureWriter{ResponseWriter: w}
			next.ServeHTTP(wrapped, r.WithContext(composables.WithTx(r.Context(), tx)))

			if err := settleTx(r.Context(), tx, wrapped.Status()); err != nil {
				composables.UseLogger(r.Context()).WithError(err).Error("failed to settle transaction")
				return
			}
			settled = true
		})
	}
}

// settleTx finishes a request-scoped transaction based on the status the
// handler answered with.
func settleTx(ctx context.Context, tx pgx.Tx, status int) error {
	if status >= http.StatusBadRequest {
		return tx.Rollback(ctx)
	}
	return tx.Commit(ctx)
}
