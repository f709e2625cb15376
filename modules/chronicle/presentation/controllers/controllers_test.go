package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
	"github.com/hanlinworks/zhiguan/modules/chronicle/services"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/eventbus"
)

// stubPositionRepo covers only the read paths exercised over HTTP here;
// the embedded interface panics on anything else, which would mean the
// test reached further than intended.
type stubPositionRepo struct {
	position.Repository
	positions    []position.Position
	functions    map[int64]position.Function
	appointments map[int64][]position.Appointment
}

func (s *stubPositionRepo) GetAll(context.Context) ([]position.Position, error) {
	return s.positions, nil
}

func (s *stubPositionRepo) EffectiveFunctions(_ context.Context, at time.Time) (map[int64]position.Function, error) {
	out := map[int64]position.Function{}
	for id, f := range s.functions {
		if !f.Date.After(at) {
			out[id] = f
		}
	}
	return out, nil
}

func (s *stubPositionRepo) ActiveAppointments(_ context.Context, at time.Time) (map[int64][]position.Appointment, error) {
	out := map[int64][]position.Appointment{}
	for id, apps := range s.appointments {
		for _, a := range apps {
			if a.ActiveAt(at) {
				out[id] = append(out[id], a)
			}
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T, repo position.Repository) *mux.Router {
	t.Helper()

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logrus.New()),
		Logger:   logrus.New(),
	})
	app.RegisterServices(services.NewPositionService(repo, app.EventPublisher()))
	app.RegisterControllers(
		NewPositionAPIController(app),
		NewCalendarAPIController(app),
	)

	r := mux.NewRouter()
	for _, c := range app.Controllers() {
		c.Register(r)
	}
	return r
}

func TestListPositions_MalformedDateRejected(t *testing.T) {
	router := newTestRouter(t, &stubPositionRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/positions?date=01-06-1368", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "CHRONICLE_INVALID_DATE", payload["code"])
}

func TestListPositions_ResolvesAtDate(t *testing.T) {
	repo := &stubPositionRepo{
		positions: []position.Position{{ID: 1, Name: "尚书令"}},
		functions: map[int64]position.Function{
			1: {ID: 10, PositionID: 1, Date: time.Date(1368, 1, 1, 0, 0, 0, 0, time.UTC), Description: "总领六部"},
		},
	}
	router := newTestRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/positions?date=1368-06-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload []struct {
		ID       int64 `json:"id"`
		Function *struct {
			Date        string `json:"date"`
			Description string `json:"description"`
		} `json:"function"`
		Appointments []any `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload, 1)
	require.NotNil(t, payload[0].Function)
	require.Equal(t, "1368-01-01", payload[0].Function.Date)
	require.Equal(t, "总领六部", payload[0].Function.Description)
	require.NotNil(t, payload[0].Appointments)
	require.Empty(t, payload[0].Appointments)
}

func TestListPositions_FutureFunctionHidden(t *testing.T) {
	repo := &stubPositionRepo{
		positions: []position.Position{{ID: 1, Name: "尚书令"}},
		functions: map[int64]position.Function{
			1: {ID: 10, PositionID: 1, Date: time.Date(1400, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	router := newTestRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/positions?date=1368-06-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload []struct {
		Function *json.RawMessage `json:"function"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload, 1)
	require.Nil(t, payload[0].Function)
}

func TestDateConvert(t *testing.T) {
	router := newTestRouter(t, &stubPositionRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/date-convert?date=1984-02-02", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Gregorian string  `json:"gregorian"`
		Lunar     *string `json:"lunar"`
		Ganzhi    string  `json:"ganzhi"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "1984-02-02", payload.Gregorian)
	require.Equal(t, "甲子日", payload.Ganzhi)
	require.NotNil(t, payload.Lunar)
	require.Equal(t, "1984年1月1日", *payload.Lunar)
}

func TestDateConvert_MalformedDate(t *testing.T) {
	router := newTestRouter(t, &stubPositionRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/date-convert?date=02/02/1984", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
