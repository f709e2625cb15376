package application

import (
	"fmt"
	"io/fs"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/hanlinworks/zhiguan/pkg/eventbus"
)

// Controller registers a set of routes under a stable key.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires its services, controllers and schema into the application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	RegisterControllers(controllers ...Controller)
	RegisterServices(services ...any)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterSchema(schema fs.FS)

	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	Schemas() []fs.FS

	// Service returns the registered service matching the type of the
	// given zero value, e.g. app.Service(services.PositionService{}).
	Service(service any) any

	EventPublisher() eventbus.EventBus
	Pool() *pgxpool.Pool
	Logger() *logrus.Logger
}

type ApplicationOptions struct {
	Pool     *pgxpool.Pool
	EventBus eventbus.EventBus
	Logger   *logrus.Logger
}

func New(opts *ApplicationOptions) Application {
	return &application{
		pool:     opts.Pool,
		eventBus: opts.EventBus,
		logger:   opts.Logger,
		services: map[reflect.Type]any{},
	}
}

type application struct {
	pool        *pgxpool.Pool
	eventBus    eventbus.EventBus
	logger      *logrus.Logger
	controllers []Controller
	middleware  []mux.MiddlewareFunc
	schemas     []fs.FS
	services    map[reflect.Type]any
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *application) RegisterServices(services ...any) {
	for _, s := range services {
		t := reflect.TypeOf(s)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		a.services[t] = s
	}
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) RegisterSchema(schema fs.FS) {
	a.schemas = append(a.schemas, schema)
}

func (a *application) Controllers() []Controller {
	return a.controllers
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *application) Schemas() []fs.FS {
	return a.schemas
}

func (a *application) Service(service any) any {
	t := reflect.TypeOf(service)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	svc, ok := a.services[t]
	if !ok {
		panic(fmt.Sprintf("service %s is not registered", t.Name()))
	}
	return svc
}

func (a *application) EventPublisher() eventbus.EventBus {
	return a.eventBus
}

func (a *application) Pool() *pgxpool.Pool {
	return a.pool
}

func (a *application) Logger() *logrus.Logger {
	return a.logger
}
