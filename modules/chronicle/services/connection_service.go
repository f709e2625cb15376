package services

import (
	"context"
	"errors"
	"time"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/connection"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
)

type ConnectionService struct {
	repo      connection.Repository
	positions position.Repository
}

func NewConnectionService(repo connection.Repository, positions position.Repository) *ConnectionService {
	return &ConnectionService{repo: repo, positions: positions}
}

func (s *ConnectionService) VisibleAt(ctx context.Context, at time.Time) ([]connection.Connection, error) {
	out, err := s.repo.VisibleAt(ctx, normalizeValidDateUTC(at))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []connection.Connection{}
	}
	return out, nil
}

func (s *ConnectionService) Create(ctx context.Context, dto *connection.CreateDTO) (connection.Connection, error) {
	if dto == nil {
		return connection.Connection{}, newValidationError("Date", "missing request body")
	}
	if dto.FromPositionID == 0 || dto.ToPositionID == 0 {
		return connection.Connection{}, newValidationError("FromPositionID", "from_position_id and to_position_id are required")
	}
	if dto.Date == "" {
		return connection.Connection{}, newValidationError("Date", "date is required")
	}
	date, err := ParseValidDate(dto.Date)
	if err != nil {
		return connection.Connection{}, err
	}

	for _, id := range []int64{dto.FromPositionID, dto.ToPositionID} {
		if _, err := s.positions.GetByID(ctx, id); err != nil {
			if errors.Is(err, position.ErrNotFound) {
				return connection.Connection{}, newValidationError("FromPositionID", "referenced position does not exist")
			}
			return connection.Connection{}, err
		}
	}

	c := connection.Connection{
		FromPositionID:  dto.FromPositionID,
		ToPositionID:    dto.ToPositionID,
		Date:            date,
		Label:           dto.Label,
		Color:           dto.Color,
		Style:           dto.Style,
		IsVisible:       true,
		SourceText:      dto.SourceText,
		SourceReference: dto.SourceReference,
	}
	if c.Color == "" {
		c.Color = "#000000"
	}
	if c.Style == "" {
		c.Style = "solid"
	}
	if dto.IsVisible != nil {
		c.IsVisible = *dto.IsVisible
	}
	return s.repo.Create(ctx, c)
}
