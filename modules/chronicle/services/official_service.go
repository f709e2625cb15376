package services

import (
	"context"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/official"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
)

type OfficialService struct {
	repo         official.Repository
	appointments position.Repository
}

func NewOfficialService(repo official.Repository, appointments position.Repository) *OfficialService {
	return &OfficialService{repo: repo, appointments: appointments}
}

// OfficialRecord is an official plus their full appointment history,
// ascending by start date.
type OfficialRecord struct {
	Official     official.Official
	Appointments []position.Appointment
}

func (s *OfficialService) Get(ctx context.Context, id int64) (OfficialRecord, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return OfficialRecord{}, err
	}
	apps, err := s.appointments.AppointmentsByOfficial(ctx, id)
	if err != nil {
		return OfficialRecord{}, err
	}
	if apps == nil {
		apps = []position.Appointment{}
	}
	return OfficialRecord{Official: o, Appointments: apps}, nil
}

func (s *OfficialService) Create(ctx context.Context, dto *official.CreateDTO) (official.Official, error) {
	if dto == nil {
		return official.Official{}, newValidationError("Name", "missing request body")
	}
	if errs, ok := dto.Ok(); !ok {
		return official.Official{}, &ValidationError{Fields: errs}
	}
	return s.repo.Create(ctx, official.Official{Name: dto.Name, Bio: dto.Bio})
}

func (s *OfficialService) Update(ctx context.Context, id int64, dto *official.UpdateDTO) error {
	if dto == nil {
		return newValidationError("Name", "missing request body")
	}
	if errs, ok := dto.Ok(); !ok {
		return &ValidationError{Fields: errs}
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dto.Name != nil {
		o.Name = *dto.Name
	}
	if dto.Bio != nil {
		o.Bio = *dto.Bio
	}
	return s.repo.Update(ctx, o)
}
