package mappers

import (
	"time"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/connection"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/official"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/viewmodels"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func FunctionToVM(f position.Function) viewmodels.Function {
	return viewmodels.Function{
		ID:              f.ID,
		Date:            formatDate(f.Date),
		Description:     f.Description,
		SourceText:      f.SourceText,
		SourceReference: f.SourceReference,
	}
}

func AppointmentToVM(a position.Appointment) viewmodels.Appointment {
	vm := viewmodels.Appointment{
		ID:              a.ID,
		PositionID:      a.PositionID,
		OfficialID:      a.OfficialID,
		StartDate:       formatDate(a.StartDate),
		SourceText:      a.SourceText,
		SourceReference: a.SourceReference,
	}
	if a.EndDate != nil {
		end := formatDate(*a.EndDate)
		vm.EndDate = &end
	}
	return vm
}

func AppointmentsToVM(apps []position.Appointment) []viewmodels.Appointment {
	out := make([]viewmodels.Appointment, 0, len(apps))
	for _, a := range apps {
		out = append(out, AppointmentToVM(a))
	}
	return out
}

func PositionToVM(p position.Position) viewmodels.Position {
	return viewmodels.Position{ID: p.ID, Name: p.Name, ParentID: p.ParentID}
}

func ResolvedToVM(r position.Resolved) viewmodels.ResolvedPosition {
	vm := viewmodels.ResolvedPosition{
		ID:           r.Position.ID,
		Name:         r.Position.Name,
		ParentID:     r.Position.ParentID,
		Appointments: AppointmentsToVM(r.Appointments),
	}
	if r.Function != nil {
		f := FunctionToVM(*r.Function)
		vm.Function = &f
	}
	return vm
}

func DetailToVM(d position.Detail) viewmodels.PositionDetail {
	functions := make([]viewmodels.Function, 0, len(d.Functions))
	for _, f := range d.Functions {
		functions = append(functions, FunctionToVM(f))
	}
	return viewmodels.PositionDetail{
		Position:     PositionToVM(d.Position),
		Functions:    functions,
		Appointments: AppointmentsToVM(d.Appointments),
	}
}

func OfficialToVM(o official.Official) viewmodels.Official {
	return viewmodels.Official{ID: o.ID, Name: o.Name, Bio: o.Bio}
}

func ConnectionToVM(c connection.Connection) viewmodels.Connection {
	return viewmodels.Connection{
		ID:              c.ID,
		FromPositionID:  c.FromPositionID,
		ToPositionID:    c.ToPositionID,
		Date:            formatDate(c.Date),
		Label:           c.Label,
		Color:           c.Color,
		Style:           c.Style,
		IsVisible:       c.IsVisible,
		SourceText:      c.SourceText,
		SourceReference: c.SourceReference,
	}
}
