package server

import (
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/pkg/application"
)

// HTTPServer assembles the application's controllers and middleware into
// one gzip-wrapped mux router and serves it.
type HTTPServer struct {
	controllers []application.Controller
	middlewares []mux.MiddlewareFunc
	fallbacks   fallbackHandlers
}

// fallbackHandlers answer requests no registered route matched. They run
// outside the router and therefore need the middleware chain applied
// explicitly.
type fallbackHandlers struct {
	notFound         http.Handler
	methodNotAllowed http.Handler
}

func NewHTTPServer(
	app application.Application,
	notFoundHandler, methodNotAllowedHandler http.Handler,
) *HTTPServer {
	return &HTTPServer{
		controllers: app.Controllers(),
		middlewares: app.Middleware(),
		fallbacks: fallbackHandlers{
			notFound:         notFoundHandler,
			methodNotAllowed: methodNotAllowedHandler,
		},
	}
}

// chain wraps h in mws so that mws[0] runs first.
func chain(h http.Handler, mws []mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func (s *HTTPServer) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.middlewares...)
	for _, c := range s.controllers {
		c.Register(r)
	}
	r.NotFoundHandler = chain(s.fallbacks.notFound, s.middlewares)
	r.MethodNotAllowedHandler = chain(s.fallbacks.methodNotAllowed, s.middlewares)
	return r
}

// Handler returns the complete request pipeline.
func (s *HTTPServer) Handler() http.Handler {
	return gziphandler.GzipHandler(s.router())
}

// Start blocks serving HTTP on addr until the listener fails.
func (s *HTTPServer) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
