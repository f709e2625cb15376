package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/mappers"
	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/viewmodels"
	"github.com/hanlinworks/zhiguan/modules/chronicle/services"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/middleware"
)

type PositionAPIController struct {
	app       application.Application
	positions *services.PositionService
	basePath  string
}

func NewPositionAPIController(app application.Application) application.Controller {
	return &PositionAPIController{
		app:       app,
		positions: app.Service(services.PositionService{}).(*services.PositionService),
		basePath:  "/api/positions",
	}
}

func (c *PositionAPIController) Key() string {
	return c.basePath
}

func (c *PositionAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.Detail).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/{id:[0-9]+}", c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/{id:[0-9]+}", c.Delete).Methods(http.MethodDelete)
}

// List answers the point-in-time query: every position decorated with
// its effective function and active appointments at the target date.
func (c *PositionAPIController) List(w http.ResponseWriter, r *http.Request) {
	at, err := queryTargetDate(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resolved, err := c.positions.ResolveAt(r.Context(), at)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	out := make([]viewmodels.ResolvedPosition, 0, len(resolved))
	for _, res := range resolved {
		out = append(out, mappers.ResolvedToVM(res))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *PositionAPIController) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_ID", "invalid position id")
		return
	}

	detail, err := c.positions.Detail(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.DetailToVM(detail))
}

func (c *PositionAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto position.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_JSON", "invalid json")
		return
	}

	created, err := c.positions.Create(r.Context(), &dto)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      created.ID,
	})
}

func (c *PositionAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_ID", "invalid position id")
		return
	}

	var dto position.UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_JSON", "invalid json")
		return
	}

	if err := c.positions.Update(r.Context(), id, &dto); err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      id,
	})
}

func (c *PositionAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CHRONICLE_INVALID_ID", "invalid position id")
		return
	}

	if err := c.positions.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
