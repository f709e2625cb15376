package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/viewmodels"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/composables"
	"github.com/hanlinworks/zhiguan/pkg/lunisolar"
)

// CalendarAPIController serves the Gregorian/lunar/ganzhi conversion of
// a date. Ganzhi is pure arithmetic and always succeeds; the lunar leg
// delegates to the conversion library and reports its failures in the
// payload instead of failing the request, so a display caller can
// degrade gracefully.
type CalendarAPIController struct {
	app      application.Application
	basePath string
}

func NewCalendarAPIController(app application.Application) application.Controller {
	return &CalendarAPIController{
		app:      app,
		basePath: "/api/date-convert",
	}
}

func (c *CalendarAPIController) Key() string {
	return c.basePath
}

func (c *CalendarAPIController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Convert).Methods(http.MethodGet)
}

func (c *CalendarAPIController) Convert(w http.ResponseWriter, r *http.Request) {
	at, err := queryTargetDate(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	out := viewmodels.DateConversion{
		Gregorian: at.Format("2006-01-02"),
		Ganzhi:    lunisolar.GanzhiDay(at),
	}

	if ld, err := lunisolar.Convert(at); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("lunar conversion failed")
		out.LunarError = err.Error()
	} else {
		label := ld.Label()
		out.Lunar = &label
	}

	writeJSON(w, http.StatusOK, out)
}
