package connection

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("connection not found")

// Connection is a dated, styleable directed edge between two positions,
// recording a historical administrative or personnel link. A connection
// has no end date: once introduced it is visible at every date on or
// after its own.
type Connection struct {
	ID              int64
	FromPositionID  int64
	ToPositionID    int64
	Date            time.Time
	Label           string
	Color           string
	Style           string
	IsVisible       bool
	SourceText      string
	SourceReference string
}

// VisibleAt reports whether the connection exists as of date d.
func (c Connection) VisibleAt(d time.Time) bool {
	return !c.Date.After(d)
}

type CreateDTO struct {
	FromPositionID  int64  `json:"from_position_id" validate:"required"`
	ToPositionID    int64  `json:"to_position_id" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Label           string `json:"label"`
	Color           string `json:"color"`
	Style           string `json:"style"`
	IsVisible       *bool  `json:"is_visible"`
	SourceText      string `json:"source_text"`
	SourceReference string `json:"source_reference"`
}

type Repository interface {
	// VisibleAt returns connections dated on or before the given date,
	// ordered by id.
	VisibleAt(ctx context.Context, at time.Time) ([]Connection, error)
	Create(ctx context.Context, c Connection) (Connection, error)
}
