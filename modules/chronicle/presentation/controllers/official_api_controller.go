package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/official"
	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/mappers"
	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/viewmodels"
	"github.com/hanlinworks/zhiguan/modules/chronicle/services"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/middleware"
)

type OfficialAPIController struct {
	app       application.Application
	officials *services.OfficialService
	basePath  string
}

func NewOfficialAPIController(app application.Application) application.Controller {
	return &OfficialAPIController{
		app:       app,
		officials: app.Service(services.OfficialService{}).(*services.OfficialService),
		basePath:  "/api/officials",
	}
}

func (c *OfficialAPIController) Key() string {
	return c.basePath
}

func (c *OfficialAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/{id:[0-9]+}", c.Get).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/{id:[0-9]+}", c.Update).Methods(http.MethodPut)
}

func (c *OfficialAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_ID", "invalid official id")
		return
	}

	record, err := c.officials.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, viewmodels.OfficialRecord{
		Official:     mappers.OfficialToVM(record.Official),
		Appointments: mappers.AppointmentsToVM(record.Appointments),
	})
}

func (c *OfficialAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto official.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_JSON", "invalid json")
		return
	}

	created, err := c.officials.Create(r.Context(), &dto)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      created.ID,
	})
}

func (c *OfficialAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_ID", "invalid official id")
		return
	}

	var dto official.UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_JSON", "invalid json")
		return
	}

	if err := c.officials.Update(r.Context(), id, &dto); err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      id,
	})
}
