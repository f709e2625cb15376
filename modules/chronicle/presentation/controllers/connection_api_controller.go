package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/connection"
	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/mappers"
	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/viewmodels"
	"github.com/hanlinworks/zhiguan/modules/chronicle/services"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/middleware"
)

type ConnectionAPIController struct {
	app         application.Application
	connections *services.ConnectionService
	basePath    string
}

func NewConnectionAPIController(app application.Application) application.Controller {
	return &ConnectionAPIController{
		app:         app,
		connections: app.Service(services.ConnectionService{}).(*services.ConnectionService),
		basePath:    "/api/connections",
	}
}

func (c *ConnectionAPIController) Key() string {
	return c.basePath
}

func (c *ConnectionAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
}

func (c *ConnectionAPIController) List(w http.ResponseWriter, r *http.Request) {
	at, err := queryTargetDate(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	visible, err := c.connections.VisibleAt(r.Context(), at)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	out := make([]viewmodels.Connection, 0, len(visible))
	for _, conn := range visible {
		out = append(out, mappers.ConnectionToVM(conn))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *ConnectionAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto connection.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_JSON", "invalid json")
		return
	}

	created, err := c.connections.Create(r.Context(), &dto)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      created.ID,
	})
}
