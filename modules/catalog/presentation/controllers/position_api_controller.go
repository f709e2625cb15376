package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/modules/catalog/presentation/mappers"
	"github.com/hanlinworks/zhiguan/modules/catalog/presentation/viewmodels"
	"github.com/hanlinworks/zhiguan/modules/catalog/services"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/middleware"
)

const uuidPattern = "{id:[0-9a-fA-F-]{36}}"

type PositionAPIController struct {
	app       application.Application
	positions *services.PositionService
	basePath  string
}

func NewPositionAPIController(app application.Application) application.Controller {
	return &PositionAPIController{
		app:       app,
		positions: app.Service(services.PositionService{}).(*services.PositionService),
		basePath:  "/api/catalog/positions",
	}
}

func (c *PositionAPIController) Key() string {
	return c.basePath
}

func (c *PositionAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/"+uuidPattern, c.Get).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/"+uuidPattern, c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/"+uuidPattern, c.Delete).Methods(http.MethodDelete)
}

func (c *PositionAPIController) List(w http.ResponseWriter, r *http.Request) {
	all, err := c.positions.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	out := make([]viewmodels.Position, 0, len(all))
	for _, p := range all {
		out = append(out, mappers.PositionToVM(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *PositionAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_ID", "invalid position id")
		return
	}

	p, err := c.positions.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.PositionToVM(p))
}

func (c *PositionAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto position.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_JSON", "invalid json")
		return
	}

	created, err := c.positions.Create(r.Context(), &dto)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      created.ID.String(),
		"name":    created.Name,
	})
}

func (c *PositionAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_ID", "invalid position id")
		return
	}

	var dto position.UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_JSON", "invalid json")
		return
	}

	if _, err := c.positions.Update(r.Context(), id, &dto); err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      id.String(),
	})
}

func (c *PositionAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_ID", "invalid position id")
		return
	}

	if err := c.positions.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
