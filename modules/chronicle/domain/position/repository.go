package position

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("position not found")
	ErrFunctionNotFound    = errors.New("position function not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type Repository interface {
	// GetAll returns every position ordered by id, i.e. creation order.
	GetAll(ctx context.Context) ([]Position, error)
	GetByID(ctx context.Context, id int64) (Position, error)
	Create(ctx context.Context, p Position) (Position, error)
	Update(ctx context.Context, p Position) error
	// Delete removes the position; dependent functions, appointments and
	// connections go with it (schema-level cascade).
	Delete(ctx context.Context, id int64) error

	// EffectiveFunctions returns, per position, the function in force at
	// the given date: maximum date <= at, ties broken by highest id.
	EffectiveFunctions(ctx context.Context, at time.Time) (map[int64]Function, error)
	// ActiveAppointments returns, per position, the appointments whose
	// interval covers the given date, ordered by id.
	ActiveAppointments(ctx context.Context, at time.Time) (map[int64][]Appointment, error)

	FunctionsByPosition(ctx context.Context, positionID int64) ([]Function, error)
	AppointmentsByPosition(ctx context.Context, positionID int64) ([]Appointment, error)
	AppointmentsByOfficial(ctx context.Context, officialID int64) ([]Appointment, error)

	// GetFunctionAt finds the function with exactly the given date, the
	// re-key target for edit-in-place upserts.
	GetFunctionAt(ctx context.Context, positionID int64, date time.Time) (Function, error)
	CreateFunction(ctx context.Context, f Function) (Function, error)
	UpdateFunction(ctx context.Context, f Function) error

	GetAppointment(ctx context.Context, id int64) (Appointment, error)
	CreateAppointment(ctx context.Context, a Appointment) (Appointment, error)
	UpdateAppointment(ctx context.Context, a Appointment) error
}
