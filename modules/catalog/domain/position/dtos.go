package position

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hanlinworks/zhiguan/pkg/serrors"
)

type CreateDTO struct {
	ID          *uuid.UUID `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Dynasty     string     `json:"dynasty"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	StartYear   *int       `json:"start_year"`
	EndYear     *int       `json:"end_year"`
	Rank        string     `json:"rank"`
	SuperiorID  *uuid.UUID `json:"superior_id"`
	Image       string     `json:"image"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if d.Name == "" {
		return serrors.ValidationErrors{"Name": "name must not be empty"}, false
	}
	return serrors.ValidationErrors{}, true
}

// ToEntity assigns a fresh id unless the caller supplied one.
func (d *CreateDTO) ToEntity() Position {
	id := uuid.New()
	if d.ID != nil {
		id = *d.ID
	}
	return Position{
		ID:          id,
		Name:        d.Name,
		Dynasty:     d.Dynasty,
		Category:    d.Category,
		Description: d.Description,
		StartYear:   d.StartYear,
		EndYear:     d.EndYear,
		Rank:        d.Rank,
		SuperiorID:  d.SuperiorID,
		Image:       d.Image,
	}
}

// UpdateDTO is a partial update. Nil fields leave the stored value
// untouched.
type UpdateDTO struct {
	Name        *string    `json:"name"`
	Dynasty     *string    `json:"dynasty"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	StartYear   *int       `json:"start_year"`
	EndYear     *int       `json:"end_year"`
	Rank        *string    `json:"rank"`
	SuperiorID  *uuid.UUID `json:"superior_id"`
	Image       *string    `json:"image"`
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	if d.Name != nil && strings.TrimSpace(*d.Name) == "" {
		return serrors.ValidationErrors{"Name": "name must not be empty"}, false
	}
	return serrors.ValidationErrors{}, true
}

// Apply merges the set fields onto p.
func (d *UpdateDTO) Apply(p Position) Position {
	if d.Name != nil {
		p.Name = strings.TrimSpace(*d.Name)
	}
	if d.Dynasty != nil {
		p.Dynasty = *d.Dynasty
	}
	if d.Category != nil {
		p.Category = *d.Category
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
	if d.StartYear != nil {
		p.StartYear = d.StartYear
	}
	if d.EndYear != nil {
		p.EndYear = d.EndYear
	}
	if d.Rank != nil {
		p.Rank = *d.Rank
	}
	if d.SuperiorID != nil {
		p.SuperiorID = d.SuperiorID
	}
	if d.Image != nil {
		p.Image = *d.Image
	}
	return p
}
