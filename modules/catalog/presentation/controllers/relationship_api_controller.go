package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
	"github.com/hanlinworks/zhiguan/modules/catalog/presentation/mappers"
	"github.com/hanlinworks/zhiguan/modules/catalog/presentation/viewmodels"
	"github.com/hanlinworks/zhiguan/modules/catalog/services"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/middleware"
)

type RelationshipAPIController struct {
	app           application.Application
	relationships *services.RelationshipService
	basePath      string
}

func NewRelationshipAPIController(app application.Application) application.Controller {
	return &RelationshipAPIController{
		app:           app,
		relationships: app.Service(services.RelationshipService{}).(*services.RelationshipService),
		basePath:      "/api/catalog/relationships",
	}
}

func (c *RelationshipAPIController) Key() string {
	return c.basePath
}

func (c *RelationshipAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/"+uuidPattern, c.Delete).Methods(http.MethodDelete)
}

func (c *RelationshipAPIController) List(w http.ResponseWriter, r *http.Request) {
	all, err := c.relationships.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	out := make([]viewmodels.Relationship, 0, len(all))
	for _, rel := range all {
		out = append(out, mappers.RelationshipToVM(rel))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *RelationshipAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto relationship.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_JSON", "invalid json")
		return
	}

	created, err := c.relationships.Create(r.Context(), &dto)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"id":        created.ID.String(),
		"source_id": created.SourceID.String(),
		"target_id": created.TargetID.String(),
	})
}

func (c *RelationshipAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_ID", "invalid relationship id")
		return
	}

	if err := c.relationships.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
