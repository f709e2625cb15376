package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/eventbus"
)

func newLunarRouter() *mux.Router {
	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logrus.New()),
		Logger:   logrus.New(),
	})
	r := mux.NewRouter()
	NewLunarAPIController(app).Register(r)
	return r
}

func TestLunarConvert(t *testing.T) {
	router := newLunarRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lunar?year=1984&month=2&day=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Solar      string `json:"solar"`
		Lunar      string `json:"lunar"`
		GanzhiYear string `json:"ganzhi_year"`
		GanzhiDay  string `json:"ganzhi_day"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "1984-2-2", payload.Solar)
	require.Equal(t, "1984年1月1日", payload.Lunar)
	require.Equal(t, "甲子", payload.GanzhiYear)
	require.Equal(t, "丙寅", payload.GanzhiDay)
}

func TestLunarConvert_MissingParams(t *testing.T) {
	router := newLunarRouter()

	for _, query := range []string{"", "year=1984", "year=1984&month=2", "year=1984&month=x&day=2"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lunar?"+query, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
	}
}

func TestLunarConvert_ImpossibleDate(t *testing.T) {
	router := newLunarRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lunar?year=2001&month=2&day=30", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
