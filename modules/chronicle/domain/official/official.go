package official

import (
	"context"
	"errors"
	"strings"

	"github.com/hanlinworks/zhiguan/pkg/constants"
	"github.com/hanlinworks/zhiguan/pkg/serrors"
)

var ErrNotFound = errors.New("official not found")

// Official is a person identity independent of any position held.
type Official struct {
	ID   int64
	Name string
	Bio  string
}

type CreateDTO struct {
	Name string `json:"name" validate:"required"`
	Bio  string `json:"bio"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ValidationErrors{"Name": "name must not be empty"}, false
	}
	return serrors.ValidationErrors{}, true
}

type UpdateDTO struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

func (d *UpdateDTO) Normalize() {
	if d.Name != nil {
		trimmed := strings.TrimSpace(*d.Name)
		d.Name = &trimmed
	}
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	if d.Name != nil && *d.Name == "" {
		return serrors.ValidationErrors{"Name": "name must not be empty"}, false
	}
	return serrors.ValidationErrors{}, true
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (Official, error)
	Create(ctx context.Context, o Official) (Official, error)
	Update(ctx context.Context, o Official) error
}
