package services

import (
	"context"
	"errors"
	"time"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/events"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
	"github.com/hanlinworks/zhiguan/pkg/eventbus"
)

// PositionService resolves point-in-time state across positions and owns
// all position writes. Callers are expected to run writes inside a
// transaction (the HTTP layer does this per request).
type PositionService struct {
	repo      position.Repository
	publisher eventbus.EventBus
}

func NewPositionService(repo position.Repository, publisher eventbus.EventBus) *PositionService {
	return &PositionService{repo: repo, publisher: publisher}
}

// ResolveAt returns every position decorated with the function in force
// and the appointments active at the given date. Order is stable:
// ascending position id, i.e. creation order.
func (s *PositionService) ResolveAt(ctx context.Context, at time.Time) ([]position.Resolved, error) {
	at = normalizeValidDateUTC(at)

	positions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	functions, err := s.repo.EffectiveFunctions(ctx, at)
	if err != nil {
		return nil, err
	}
	appointments, err := s.repo.ActiveAppointments(ctx, at)
	if err != nil {
		return nil, err
	}

	out := make([]position.Resolved, 0, len(positions))
	for _, p := range positions {
		resolved := position.Resolved{
			Position:     p,
			Appointments: []position.Appointment{},
		}
		if f, ok := functions[p.ID]; ok {
			fn := f
			resolved.Function = &fn
		}
		if apps, ok := appointments[p.ID]; ok {
			resolved.Appointments = apps
		}
		out = append(out, resolved)
	}
	return out, nil
}

// Detail returns the complete, date-unfiltered timeline of one position:
// all functions ascending by date and all appointments ascending by start
// date, for timeline rendering.
func (s *PositionService) Detail(ctx context.Context, id int64) (position.Detail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return position.Detail{}, err
	}
	functions, err := s.repo.FunctionsByPosition(ctx, id)
	if err != nil {
		return position.Detail{}, err
	}
	appointments, err := s.repo.AppointmentsByPosition(ctx, id)
	if err != nil {
		return position.Detail{}, err
	}
	if functions == nil {
		functions = []position.Function{}
	}
	if appointments == nil {
		appointments = []position.Appointment{}
	}
	return position.Detail{Position: p, Functions: functions, Appointments: appointments}, nil
}

// Create persists a new position and, when the DTO carries one, its
// initial function. Both rows share the caller's transaction.
func (s *PositionService) Create(ctx context.Context, dto *position.CreateDTO) (position.Position, error) {
	if dto == nil {
		return position.Position{}, newValidationError("Name", "missing request body")
	}
	if errs, ok := dto.Ok(); !ok {
		return position.Position{}, &ValidationError{Fields: errs}
	}

	// All dates must parse before the first row goes in, so a bad
	// payload never reaches the repository.
	var functionDate time.Time
	if dto.Function != nil {
		dateStr := dto.Function.Date
		if dateStr == "" {
			dateStr = dto.Date
		}
		var err error
		functionDate, err = ParseValidDateOr(dateStr, TodayUTC())
		if err != nil {
			return position.Position{}, err
		}
	}

	created, err := s.repo.Create(ctx, position.Position{
		Name:     dto.Name,
		ParentID: dto.ParentID,
	})
	if err != nil {
		return position.Position{}, err
	}

	if dto.Function != nil {
		if _, err := s.UpsertFunction(ctx, created.ID, functionDate, dto.Function); err != nil {
			return position.Position{}, err
		}
	}

	if s.publisher != nil {
		s.publisher.Publish(events.PositionCreatedEvent{Position: created})
	}
	return created, nil
}

// Update applies a partial update to the position row, upserts the
// function for the DTO's date, and upserts the listed appointments.
func (s *PositionService) Update(ctx context.Context, id int64, dto *position.UpdateDTO) error {
	if dto == nil {
		return newValidationError("Name", "missing request body")
	}
	if errs, ok := dto.Ok(); !ok {
		return &ValidationError{Fields: errs}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	date, err := ParseValidDateOr(dto.Date, TodayUTC())
	if err != nil {
		return err
	}
	for i := range dto.Appointments {
		if err := checkAppointmentDates(&dto.Appointments[i]); err != nil {
			return err
		}
	}

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.ParentID != nil {
		p.ParentID = dto.ParentID
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	if dto.Function != nil {
		if _, err := s.UpsertFunction(ctx, id, date, dto.Function); err != nil {
			return err
		}
	}

	for i := range dto.Appointments {
		if err := s.upsertAppointment(ctx, id, &dto.Appointments[i]); err != nil {
			return err
		}
	}

	if s.publisher != nil {
		s.publisher.Publish(events.PositionUpdatedEvent{Position: p})
	}
	return nil
}

/// Delete removes the position and everything hanging off it: functions,
// appointments and connections touching it all go in the same transaction.
func (s *PositionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.publisher != nil {
		s.publisher.Publish(events.PositionDeletedEvent{PositionID: id})
	}
	return nil
}

// UpsertFunction merges the patch into the function recorded for
// (positionID, date) when one exists, otherwise inserts a new record.
// Editing via a date re-keys to the existing row instead of duplicating.
func (s *PositionService) UpsertFunction(ctx context.Context, positionID int64, date time.Time, patch *position.FunctionPatch) (position.Function, error) {
	date = normalizeValidDateUTC(date)

	existing, err := s.repo.GetFunctionAt(ctx, positionID, date)
	switch {
	case err == nil:
		if patch.Description != nil {
			existing.Description = *patch.Description
		}
		if patch.SourceText != nil {
			existing.SourceText = *patch.SourceText
		}
		if patch.SourceReference != nil {
			existing.SourceReference = *patch.SourceReference
		}
		if err := s.repo.UpdateFunction(ctx, existing); err != nil {
			return position.Function{}, err
		}
		return existing, nil
	case errors.Is(err, position.ErrFunctionNotFound):
		f := position.Function{PositionID: positionID, Date: date}
		if patch.Description != nil {
			f.Description = *patch.Description
		}
		if patch.SourceText != nil {
			f.SourceText = *patch.SourceText
		}
		if patch.SourceReference != nil {
			f.SourceReference = *patch.SourceReference
		}
		return s.repo.CreateFunction(ctx, f)
	default:
		return position.Function{}, err
	}
}

// checkAppointmentDates rejects malformed interval bounds up front,
// before any row of the enclosing update is written.
func checkAppointmentDates(patch *position.AppointmentPatch) error {
	if patch.StartDate != nil {
		if _, err := ParseValidDate(*patch.StartDate); err != nil {
			return err
		}
	}
	if patch.EndDate != nil && *patch.EndDate != "" {
		if _, err := ParseValidDate(*patch.EndDate); err != nil {
			return err
		}
	}
	return nil
}

func (s *PositionService) upsertAppointment(ctx context.Context, positionID int64, patch *position.AppointmentPatch) error {
	if patch.ID != nil {
		a, err := s.repo.GetAppointment(ctx, *patch.ID)
		if err != nil {
			return err
		}
		if a.PositionID != positionID {
			return newValidationError("Appointments", "appointment does not belong to this position")
		}
		if patch.OfficialID != nil {
			a.OfficialID = *patch.OfficialID
		}
		if patch.StartDate != nil {
			start, err := ParseValidDate(*patch.StartDate)
			if err != nil {
				return err
			}
			a.StartDate = start
		}
		if patch.EndDate != nil {
			if *patch.EndDate == "" {
				a.EndDate = nil
			} else {
				end, err := ParseValidDate(*patch.EndDate)
				if err != nil {
					return err
				}
				a.EndDate = &end
			}
		}
		if patch.SourceText != nil {
			a.SourceText = *patch.SourceText
		}
		if patch.SourceReference != nil {
			a.SourceReference = *patch.SourceReference
		}
		return s.repo.UpdateAppointment(ctx, a)
	}

	if patch.OfficialID == nil {
		return newValidationError("Appointments", "official_id is required for a new appointment")
	}
	if patch.StartDate == nil {
		return newValidationError("Appointments", "start_date is required for a new appointment")
	}
	start, err := ParseValidDate(*patch.StartDate)
	if err != nil {
		return err
	}

	a := position.Appointment{
		PositionID: positionID,
		OfficialID: *patch.OfficialID,
		StartDate:  start,
	}
	if patch.EndDate != nil && *patch.EndDate != "" {
		end, err := ParseValidDate(*patch.EndDate)
		if err != nil {
			return err
		}
		a.EndDate = &end
	}
	if patch.SourceText != nil {
		a.SourceText = *patch.SourceText
	}
	if patch.SourceReference != nil {
		a.SourceReference = *patch.SourceReference
	}
	_, err = s.repo.CreateAppointment(ctx, a)
	return err
}
