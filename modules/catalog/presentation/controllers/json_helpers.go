package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
	"github.com/hanlinworks/zhiguan/modules/catalog/services"
	"github.com/hanlinworks/zhiguan/pkg/composables"
	"github.com/hanlinworks/zhiguan/pkg/configuration"
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

func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_VALIDATION_FAILED", verr.Fields.First("Name", "SourceID", "TargetID"))
		return
	}

	switch {
	case errors.Is(err, position.ErrNotFound),
		errors.Is(err, relationship.ErrNotFound):
		writeAPIError(w, r, http.StatusNotFound, "CATALOG_NOT_FOUND", err.Error())
	default:
		composables.UseLogger(r.Context()).WithError(err).Error("catalog request failed")
		writeAPIError(w, r, http.StatusInternalServerError, "CATALOG_INTERNAL", "internal error")
	}
}

func pathUUID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}
