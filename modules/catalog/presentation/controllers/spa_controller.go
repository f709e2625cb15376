package controllers

import (
	"io/fs"
	"net/http"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/catalog/presentation/assets"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/configuration"
)

// SpaController serves the embedded frontend. Hashed asset paths get
// long cache lifetimes, everything else falls back to index.html so
// client-side routes survive a reload. It must be registered after the
// API controllers since its catch-all prefix matches every path.
type SpaController struct {
	assets *hashfs.FS
}

func NewSpaController() application.Controller {
	return &SpaController{assets: assets.FS}
}

func (c *SpaController) Key() string {
	return "/"
}

func (c *SpaController) Register(r *mux.Router) {
	cacheControl := "public, max-age=3600"
	if configuration.Use().GoAppEnvironment != configuration.Production {
		cacheControl = "no-cache, no-store, must-revalidate"
	}

	fileServer := hashfs.FileServer(c.assets)
	r.PathPrefix("/").Handler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)

		name := req.URL.Path[1:]
		if name != "" && c.exists(name) {
			fileServer.ServeHTTP(w, req)
			return
		}
		c.serveIndex(w, req)
	})).Methods(http.MethodGet)
}

func (c *SpaController) exists(name string) bool {
	f, err := c.assets.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}

func (c *SpaController) serveIndex(w http.ResponseWriter, r *http.Request) {
	index, err := fs.ReadFile(c.assets, "index.html")
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CATALOG_INTERNAL", "frontend not bundled")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(index)
}
