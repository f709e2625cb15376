package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hanlinworks/zhiguan/modules/catalog/presentation/viewmodels"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/lunisolar"
)

// LunarAPIController converts a solar date given as discrete year,
// month and day parameters. All three are required; out-of-range and
// unsupported dates fail the whole request, unlike the graceful single
// date conversion endpoint.
type LunarAPIController struct {
	app      application.Application
	basePath string
}

func NewLunarAPIController(app application.Application) application.Controller {
	return &LunarAPIController{
		app:      app,
		basePath: "/api/lunar",
	}
}

func (c *LunarAPIController) Key() string {
	return c.basePath
}

func (c *LunarAPIController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Convert).Methods(http.MethodGet)
}

func (c *LunarAPIController) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, errY := strconv.Atoi(q.Get("year"))
	month, errM := strconv.Atoi(q.Get("month"))
	day, errD := strconv.Atoi(q.Get("day"))
	if errY != nil || errM != nil || errD != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_DATE", "missing date parameters")
		return
	}

	// time.Date normalizes overflow (month 13, day 32), so an exact
	// round-trip check is the calendar validity check.
	solar := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if solar.Year() != year || int(solar.Month()) != month || solar.Day() != day {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_DATE", "no such calendar date")
		return
	}

	lunar, err := lunisolar.Convert(solar)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_DATE", err.Error())
		return
	}
	ganzhi, err := lunisolar.GanzhiOf(solar)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CATALOG_INVALID_DATE", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, viewmodels.LunarConversion{
		Solar:       fmt.Sprintf("%d-%d-%d", year, month, day),
		Lunar:       lunar.Label(),
		GanzhiYear:  ganzhi.Year,
		GanzhiMonth: ganzhi.Month,
		GanzhiDay:   ganzhi.Day,
	})
}
