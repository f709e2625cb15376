package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// recordingTx tracks how the middleware finishes a transaction; the
// embedded interface covers the methods this test never calls.
type recordingTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *recordingTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

func TestSettleTx_SuccessCommits(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		tx := &recordingTx{}
		require.NoError(t, settleTx(context.Background(), tx, status))
		require.True(t, tx.committed, "status %d", status)
		require.False(t, tx.rolledBack, "status %d", status)
	}
}

func TestSettleTx_ErrorStatusRollsBack(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		tx := &recordingTx{}
		require.NoError(t, settleTx(context.Background(), tx, status))
		require.True(t, tx.rolledBack, "status %d", status)
		require.False(t, tx.committed, "status %d", status)
	}
}

func TestResponseCaptureWriter_RecordsHandlerStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &responseCaptureWriter{ResponseWriter: rec}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"VALIDATION_FAILED"}`))
	})
	handler.ServeHTTP(wrapped, httptest.NewRequest(http.MethodPost, "/", nil))

	require.Equal(t, http.StatusBadRequest, wrapped.Status())
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponseCaptureWriter_DefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &responseCaptureWriter{ResponseWriter: rec}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	handler.ServeHTTP(wrapped, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, wrapped.Status())
}

func TestResponseCaptureWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &responseCaptureWriter{ResponseWriter: rec}

	wrapped.WriteHeader(http.StatusNotFound)
	wrapped.WriteHeader(http.StatusOK)

	require.Equal(t, http.StatusNotFound, wrapped.Status())
}
