package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/configuration"
	"github.com/hanlinworks/zhiguan/pkg/middleware"
	"github.com/hanlinworks/zhiguan/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger),
		middleware.WithPool(options.Pool),
		middleware.Cors(options.Configuration.AllowedOrigins...),
	)

	return server.NewHTTPServer(
		app,
		jsonError(http.StatusNotFound, "NOT_FOUND", "resource not found"),
		jsonError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed"),
	), nil
}

func jsonError(status int, code, message string) http.Handler {
	body := []byte(`{"code":"` + code + `","message":"` + message + `"}`)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	})
}
