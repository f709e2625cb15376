package services

import (
	"context"
	"sort"
	"time"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/connection"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/official"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
)

// fakePositionRepo is an in-memory position.Repository with the same
// temporal semantics as the SQL implementation.
type fakePositionRepo struct {
	nextID       int64
	positions    []position.Position
	functions    []position.Function
	appointments []position.Appointment
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{nextID: 1}
}

func (r *fakePositionRepo) id() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *fakePositionRepo) GetAll(_ context.Context) ([]position.Position, error) {
	out := make([]position.Position, len(r.positions))
	copy(out, r.positions)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePositionRepo) GetByID(_ context.Context, id int64) (position.Position, error) {
	for _, p := range r.positions {
		if p.ID == id {
			return p, nil
		}
	}
	return position.Position{}, position.ErrNotFound
}

func (r *fakePositionRepo) Create(_ context.Context, p position.Position) (position.Position, error) {
	p.ID = r.id()
	r.positions = append(r.positions, p)
	return p, nil
}

func (r *fakePositionRepo) Update(_ context.Context, p position.Position) error {
	for i := range r.positions {
		if r.positions[i].ID == p.ID {
			r.positions[i] = p
			return nil
		}
	}
	return position.ErrNotFound
}

func (r *fakePositionRepo) Delete(_ context.Context, id int64) error {
	found := false
	out := r.positions[:0]
	for _, p := range r.positions {
		if p.ID == id {
			found = true
			continue
		}
		if p.ParentID != nil && *p.ParentID == id {
			p.ParentID = nil
		}
		out = append(out, p)
	}
	r.positions = out
	if !found {
		return position.ErrNotFound
	}
	fns := r.functions[:0]
	for _, f := range r.functions {
		if f.PositionID != id {
			fns = append(fns, f)
		}
	}
	r.functions = fns
	apps := r.appointments[:0]
	for _, a := range r.appointments {
		if a.PositionID != id {
			apps = append(apps, a)
		}
	}
	r.appointments = apps
	return nil
}

func (r *fakePositionRepo) EffectiveFunctions(_ context.Context, at time.Time) (map[int64]position.Function, error) {
	out := map[int64]position.Function{}
	for _, f := range r.functions {
		if f.Date.After(at) {
			continue
		}
		cur, ok := out[f.PositionID]
		if !ok || f.Date.After(cur.Date) || (f.Date.Equal(cur.Date) && f.ID > cur.ID) {
			out[f.PositionID] = f
		}
	}
	return out, nil
}

func (r *fakePositionRepo) ActiveAppointments(_ context.Context, at time.Time) (map[int64][]position.Appointment, error) {
	out := map[int64][]position.Appointment{}
	for _, a := range r.appointments {
		if a.ActiveAt(at) {
			out[a.PositionID] = append(out[a.PositionID], a)
		}
	}
	return out, nil
}

func (r *fakePositionRepo) FunctionsByPosition(_ context.Context, positionID int64) ([]position.Function, error) {
	var out []position.Function
	for _, f := range r.functions {
		if f.PositionID == positionID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakePositionRepo) AppointmentsByPosition(_ context.Context, positionID int64) ([]position.Appointment, error) {
	var out []position.Appointment
	for _, a := range r.appointments {
		if a.PositionID == positionID {
			out = append(out, a)
		}
	}
	sortAppointments(out)
	return out, nil
}

func (r *fakePositionRepo) AppointmentsByOfficial(_ context.Context, officialID int64) ([]position.Appointment, error) {
	var out []position.Appointment
	for _, a := range r.appointments {
		if a.OfficialID == officialID {
			out = append(out, a)
		}
	}
	sortAppointments(out)
	return out, nil
}

func sortAppointments(apps []position.Appointment) {
	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].StartDate.Equal(apps[j].StartDate) {
			return apps[i].StartDate.Before(apps[j].StartDate)
		}
		return apps[i].ID < apps[j].ID
	})
}

func (r *fakePositionRepo) GetFunctionAt(_ context.Context, positionID int64, date time.Time) (position.Function, error) {
	best := position.Function{ID: -1}
	for _, f := range r.functions {
		if f.PositionID == positionID && f.Date.Equal(date) && f.ID > best.ID {
			best = f
		}
	}
	if best.ID == -1 {
		return position.Function{}, position.ErrFunctionNotFound
	}
	return best, nil
}

func (r *fakePositionRepo) CreateFunction(_ context.Context, f position.Function) (position.Function, error) {
	f.ID = r.id()
	r.functions = append(r.functions, f)
	return f, nil
}

func (r *fakePositionRepo) UpdateFunction(_ context.Context, f position.Function) error {
	for i := range r.functions {
		if r.functions[i].ID == f.ID {
			r.functions[i] = f
			return nil
		}
	}
	return position.ErrFunctionNotFound
}

func (r *fakePositionRepo) GetAppointment(_ context.Context, id int64) (position.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return position.Appointment{}, position.ErrAppointmentNotFound
}

func (r *fakePositionRepo) CreateAppointment(_ context.Context, a position.Appointment) (position.Appointment, error) {
	a.ID = r.id()
	r.appointments = append(r.appointments, a)
	return a, nil
}

func (r *fakePositionRepo) UpdateAppointment(_ context.Context, a position.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == a.ID {
			r.appointments[i] = a
			return nil
		}
	}
	return position.ErrAppointmentNotFound
}

type fakeOfficialRepo struct {
	nextID    int64
	officials []official.Official
}

func newFakeOfficialRepo() *fakeOfficialRepo {
	return &fakeOfficialRepo{nextID: 1}
}

func (r *fakeOfficialRepo) GetByID(_ context.Context, id int64) (official.Official, error) {
	for _, o := range r.officials {
		if o.ID == id {
			return o, nil
		}
	}
	return official.Official{}, official.ErrNotFound
}

func (r *fakeOfficialRepo) Create(_ context.Context, o official.Official) (official.Official, error) {
	o.ID = r.nextID
	r.nextID++
	r.officials = append(r.officials, o)
	return o, nil
}

func (r *fakeOfficialRepo) Update(_ context.Context, o official.Official) error {
	for i := range r.officials {
		if r.officials[i].ID == o.ID {
			r.officials[i] = o
			return nil
		}
	}
	return official.ErrNotFound
}

type fakeConnectionRepo struct {
	nextID      int64
	connections []connection.Connection
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{nextID: 1}
}

func (r *fakeConnectionRepo) VisibleAt(_ context.Context, at time.Time) ([]connection.Connection, error) {
	var out []connection.Connection
	for _, c := range r.connections {
		if c.VisibleAt(at) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConnectionRepo) Create(_ context.Context, c connection.Connection) (connection.Connection, error) {
	c.ID = r.nextID
	r.nextID++
	r.connections = append(r.connections, c)
	return c, nil
}
