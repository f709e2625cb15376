package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/connection"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/official"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
	"github.com/hanlinworks/zhiguan/modules/chronicle/services"
	"github.com/hanlinworks/zhiguan/pkg/composables"
	"github.com/hanlinworks/zhiguan/pkg/configuration"
	"github.com/hanlinworks/zhiguan/pkg/serrors"
)

type apiError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		panic(err)
	}
}

func ensureRequestID(w http.ResponseWriter, r *http.Request) string {
	if r == nil {
		return ""
	}
	header := strings.TrimSpace(configuration.Use().RequestIDHeader)
	if header == "" {
		header = "X-Request-ID"
	}

	requestID := strings.TrimSpace(r.Header.Get(header))
	if requestID == "" {
		requestID = uuid.NewString()
		w.Header().Set(header, requestID)
	}
	return requestID
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	writeJSON(w, status, apiError{
		Code:    code,
		Message: message,
		Meta:    map[string]string{"request_id": ensureRequestID(w, r)},
	})
}

// respondServiceError maps service errors onto the API contract:
// validation failures are 400, unknown identities 404, anything else a
// logged 500 with a generic message.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_VALIDATION_FAILED", verr.Fields.First("Name", "Date", "Appointments", "FromPositionID"))
		return
	}

	var serr *serrors.Error
	if errors.As(err, &serr) {
		writeAPIError(w, r, http.StatusBadRequest, serr.Code, serr.Message)
		return
	}

	switch {
	case errors.Is(err, position.ErrNotFound),
		errors.Is(err, position.ErrAppointmentNotFound),
		errors.Is(err, official.ErrNotFound),
		errors.Is(err, connection.ErrNotFound):
		writeAPIError(w, r, http.StatusNotFound, "CHRONICLE_NOT_FOUND", err.Error())
	default:
		composables.UseLogger(r.Context()).WithError(err).Error("chronicle request failed")
		writeAPIError(w, r, http.StatusInternalServerError, "CHRONICLE_INTERNAL", "internal error")
	}
}

// queryTargetDate resolves the optional ?date= parameter: absent means
// today (UTC), malformed is an error surfaced before any query runs.
func queryTargetDate(r *http.Request) (time.Time, error) {
	return services.ParseValidDateOr(r.URL.Query().Get("date"), services.TodayUTC())
}
