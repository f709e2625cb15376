package position

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hanlinworks/zhiguan/pkg/constants"
	"github.com/hanlinworks/zhiguan/pkg/serrors"
)

// FunctionPatch carries the mutable fields of a function. Nil pointers
// leave the stored value untouched on merge.
type FunctionPatch struct {
	Date            string  `json:"date"`
	Description     *string `json:"description"`
	SourceText      *string `json:"source_text"`
	SourceReference *string `json:"source_reference"`
}

// AppointmentPatch updates an existing appointment when ID is set,
// otherwise creates a new one scoped to the enclosing position.
type AppointmentPatch struct {
	ID              *int64  `json:"id"`
	OfficialID      *int64  `json:"official_id"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	SourceText      *string `json:"source_text"`
	SourceReference *string `json:"source_reference"`
}

type CreateDTO struct {
	Name     string         `json:"name" validate:"required"`
	ParentID *int64         `json:"parent_id"`
	Date     string         `json:"date"`
	Function *FunctionPatch `json:"function"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	return validateStruct(d)
}

type UpdateDTO struct {
	Name         *string            `json:"name"`
	ParentID     *int64             `json:"parent_id"`
	Date         string             `json:"date"`
	Function     *FunctionPatch     `json:"function"`
	Appointments []AppointmentPatch `json:"appointments"`
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
	return validateStruct(d)
}

func validateStruct(v any) (serrors.ValidationErrors, bool) {
	err := constants.Validate.Struct(v)
	if err == nil {
		return serrors.ValidationErrors{}, true
	}
	out := serrors.ValidationErrors{}
	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, fe := range validatorErrs {
			out[fe.Field()] = fe.Field() + " failed on " + fe.Tag()
		}
	} else {
		out["_"] = err.Error()
	}
	return out, false
}
