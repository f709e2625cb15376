package position

import (
	"time"
)

// Position is a government post. Positions form a forest through ParentID;
// the temporal facts about a position (duties, office holders) live in
// Function and Appointment records keyed by its ID.
type Position struct {
	ID       int64
	Name     string
	ParentID *int64
}

// Function is a dated statement of a position's duties together with its
// source citation. At most one function exists per position per date; the
// one in force at a date D is the latest function dated on or before D.
type Function struct {
	ID              int64
	PositionID      int64
	Date            time.Time
	Description     string
	SourceText      string
	SourceReference string
}

// Appointment binds an official to a position over [StartDate, EndDate].
// A nil EndDate means the official is still serving.
type Appointment struct {
	ID              int64
	PositionID      int64
	OfficialID      int64
	StartDate       time.Time
	EndDate         *time.Time
	SourceText      string
	SourceReference string
}

// ActiveAt reports whether the appointment covers date d. Both interval
// boundaries are inclusive.
func (a Appointment) ActiveAt(d time.Time) bool {
	if a.StartDate.After(d) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(d)
}

// Resolved is a position decorated with its state as of a query date.
type Resolved struct {
	Position     Position
	Function     *Function
	Appointments []Appointment
}

// Detail is the full timeline of one position, unfiltered by date.
type Detail struct {
	Position     Position
	Functions    []Function
	Appointments []Appointment
}
