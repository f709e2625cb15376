package persistence

import (
	"context"
	"errors"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
	"github.com/hanlinworks/zhiguan/pkg/composables"
)

type PositionRepository struct{}

func NewPositionRepository() position.Repository {
	return &PositionRepository{}
}

func (r *PositionRepository) GetAll(ctx context.Context) ([]position.Position, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, parent_id
FROM chronicle_positions
ORDER BY id
`)
	if err != nil {
		return nil, gerrors.Wrap(err, "list positions")
	}
	defer rows.Close()

	var out []position.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PositionRepository) GetByID(ctx context.Context, id int64) (position.Position, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return position.Position{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT id, name, parent_id
FROM chronicle_positions
WHERE id = $1
`, id)
	p, err := scanPosition(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrNotFound
		}
		return position.Position{}, gerrors.Wrap(err, "get position")
	}
	return p, nil
}

func (r *PositionRepository) Create(ctx context.Context, p position.Position) (position.Position, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return position.Position{}, err
	}

	if err := tx.QueryRow(ctx, `
INSERT INTO chronicle_positions (name, parent_id)
VALUES ($1, $2)
RETURNING id
`, p.Name, pgNullableInt8(p.ParentID)).Scan(&p.ID); err != nil {
		return position.Position{}, gerrors.Wrap(err, "create position")
	}
	return p, nil
}

func (r *PositionRepository) Update(ctx context.Context, p position.Position) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
UPDATE chronicle_positions
SET name = $2, parent_id = $3
WHERE id = $1
`, p.ID, p.Name, pgNullableInt8(p.ParentID))
	if err != nil {
		return gerrors.Wrap(err, "update position")
	}
	if tag.RowsAffected() == 0 {
		return position.ErrNotFound
	}
	return nil
}

func (r *PositionRepository) Delete(ctx context.Context, id int64) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	// Children of the deleted position become roots; dependent functions,
	// appointments and connections cascade at the schema level.
	if _, err := tx.Exec(ctx, `
UPDATE chronicle_positions SET parent_id = NULL WHERE parent_id = $1
`, id); err != nil {
		return gerrors.Wrap(err, "detach child positions")
	}

	tag, err := tx.Exec(ctx, `DELETE FROM chronicle_positions WHERE id = $1`, id)
	if err != nil {
		return gerrors.Wrap(err, "delete position")
	}
	if tag.RowsAffected() == 0 {
		return position.ErrNotFound
	}
	return nil
}

func (r *PositionRepository) EffectiveFunctions(ctx context.Context, at time.Time) (map[int64]position.Function, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT DISTINCT ON (position_id)
	id, position_id, date, description, source_text, source_reference
FROM chronicle_position_functions
WHERE date <= $1
ORDER BY position_id, date DESC, id DESC
`, pgDateOnlyUTC(at))
	if err != nil {
		return nil, gerrors.Wrap(err, "effective functions")
	}
	defer rows.Close()

	out := map[int64]position.Function{}
	for rows.Next() {
		f, err := scanFunction(rows)
		if err != nil {
			return nil, err
		}
		out[f.PositionID] = f
	}
	return out, rows.Err()
}

func (r *PositionRepository) ActiveAppointments(ctx context.Context, at time.Time) (map[int64][]position.Appointment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, position_id, official_id, start_date, end_date, source_text, source_reference
FROM chronicle_appointments
WHERE start_date <= $1 AND (end_date IS NULL OR end_date >= $1)
ORDER BY position_id, id
`, pgDateOnlyUTC(at))
	if err != nil {
		return nil, gerrors.Wrap(err, "active appointments")
	}
	defer rows.Close()

	out := map[int64][]position.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out[a.PositionID] = append(out[a.PositionID], a)
	}
	return out, rows.Err()
}

func (r *PositionRepository) FunctionsByPosition(ctx context.Context, positionID int64) ([]position.Function, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, position_id, date, description, source_text, source_reference
FROM chronicle_position_functions
WHERE position_id = $1
ORDER BY date, id
`, positionID)
	if err != nil {
		return nil, gerrors.Wrap(err, "functions by position")
	}
	defer rows.Close()

	var out []position.Function
	for rows.Next() {
		f, err := scanFunction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PositionRepository) AppointmentsByPosition(ctx context.Context, positionID int64) ([]position.Appointment, error) {
	return r.appointmentsWhere(ctx, "position_id", positionID)
}

func (r *PositionRepository) AppointmentsByOfficial(ctx context.Context, officialID int64) ([]position.Appointment, error) {
	return r.appointmentsWhere(ctx, "official_id", officialID)
}

func (r *PositionRepository) appointmentsWhere(ctx context.Context, column string, id int64) ([]position.Appointment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, position_id, official_id, start_date, end_date, source_text, source_reference
FROM chronicle_appointments
WHERE `+column+` = $1
ORDER BY start_date, id
`, id)
	if err != nil {
		return nil, gerrors.Wrap(err, "appointments by "+column)
	}
	defer rows.Close()

	var out []position.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PositionRepository) GetFunctionAt(ctx context.Context, positionID int64, date time.Time) (position.Function, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return position.Function{}, err
	}

	// The schema forbids duplicate dates per position, but pick the
	// highest id anyway so a lookup is always deterministic.
	row := tx.QueryRow(ctx, `
SELECT id, position_id, date, description, source_text, source_reference
FROM chronicle_position_functions
WHERE position_id = $1 AND date = $2
ORDER BY id DESC
LIMIT 1
`, positionID, pgDateOnlyUTC(date))
	f, err := scanFunction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Function{}, position.ErrFunctionNotFound
		}
		return position.Function{}, gerrors.Wrap(err, "get function at date")
	}
	return f, nil
}

func (r *PositionRepository) CreateFunction(ctx context.Context, f position.Function) (position.Function, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return position.Function{}, err
	}

	if err := tx.QueryRow(ctx, `
INSERT INTO chronicle_position_functions (position_id, date, description, source_text, source_reference)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, f.PositionID, pgDateOnlyUTC(f.Date), f.Description, f.SourceText, f.SourceReference).Scan(&f.ID); err != nil {
		return position.Function{}, gerrors.Wrap(err, "create function")
	}
	return f, nil
}

func (r *PositionRepository) UpdateFunction(ctx context.Context, f position.Function) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
UPDATE chronicle_position_functions
SET description = $2, source_text = $3, source_reference = $4
WHERE id = $1
`, f.ID, f.Description, f.SourceText, f.SourceReference)
	if err != nil {
		return gerrors.Wrap(err, "update function")
	}
	if tag.RowsAffected() == 0 {
		return position.ErrFunctionNotFound
	}
	return nil
}

func (r *PositionRepository) GetAppointment(ctx context.Context, id int64) (position.Appointment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return position.Appointment{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT id, position_id, official_id, start_date, end_date, source_text, source_reference
FROM chronicle_appointments
WHERE id = $1
`, id)
	a, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Appointment{}, position.ErrAppointmentNotFound
		}
		return position.Appointment{}, gerrors.Wrap(err, "get appointment")
	}
	return a, nil
}

func (r *PositionRepository) CreateAppointment(ctx context.Context, a position.Appointment) (position.Appointment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return position.Appointment{}, err
	}

	if err := tx.QueryRow(ctx, `
INSERT INTO chronicle_appointments (position_id, official_id, start_date, end_date, source_text, source_reference)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, a.PositionID, a.OfficialID, pgDateOnlyUTC(a.StartDate), pgNullableDate(a.EndDate), a.SourceText, a.SourceReference).Scan(&a.ID); err != nil {
		return position.Appointment{}, gerrors.Wrap(err, "create appointment")
	}
	return a, nil
}

func (r *PositionRepository) UpdateAppointment(ctx context.Context, a position.Appointment) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
UPDATE chronicle_appointments
SET official_id = $2, start_date = $3, end_date = $4, source_text = $5, source_reference = $6
WHERE id = $1
`, a.ID, a.OfficialID, pgDateOnlyUTC(a.StartDate), pgNullableDate(a.EndDate), a.SourceText, a.SourceReference)
	if err != nil {
		return gerrors.Wrap(err, "update appointment")
	}
	if tag.RowsAffected() == 0 {
		return position.ErrAppointmentNotFound
	}
	return nil
}

func scanPosition(row pgx.Row) (position.Position, error) {
	var (
		p        position.Position
		parentID pgtype.Int8
	)
	if err := row.Scan(&p.ID, &p.Name, &parentID); err != nil {
		return position.Position{}, err
	}
	p.ParentID = fromPgNullableInt8(parentID)
	return p, nil
}

func scanFunction(row pgx.Row) (position.Function, error) {
	var (
		f    position.Function
		date pgtype.Date
	)
	if err := row.Scan(&f.ID, &f.PositionID, &date, &f.Description, &f.SourceText, &f.SourceReference); err != nil {
		return position.Function{}, err
	}
	f.Date = fromPgDate(date)
	return f, nil
}

func scanAppointment(row pgx.Row) (position.Appointment, error) {
	var (
		a     position.Appointment
		start pgtype.Date
		end   pgtype.Date
	)
	if err := row.Scan(&a.ID, &a.PositionID, &a.OfficialID, &start, &end, &a.SourceText, &a.SourceReference); err != nil {
		return position.Appointment{}, err
	}
	a.StartDate = fromPgDate(start)
	a.EndDate = fromPgNullableDate(end)
	return a, nil
}
