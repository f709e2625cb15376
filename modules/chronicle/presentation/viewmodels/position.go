package viewmodels

type Function struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	SourceText      string `json:"source_text"`
	SourceReference string `json:"source_reference"`
}

type Appointment struct {
	ID              int64   `json:"id"`
	PositionID      int64   `json:"position_id"`
	OfficialID      int64   `json:"official_id"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date"`
	SourceText      string  `json:"source_text"`
	SourceReference string  `json:"source_reference"`
}

type Position struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// ResolvedPosition is a position as of a target date: base fields plus
// the function in force and the active appointments.
type ResolvedPosition struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	ParentID     *int64        `json:"parent_id"`
	Function     *Function     `json:"function"`
	Appointments []Appointment `json:"appointments"`
}

// PositionDetail is the full timeline of one position.
type PositionDetail struct {
	Position     Position      `json:"position"`
	Functions    []Function    `json:"functions"`
	Appointments []Appointment `json:"appointments"`
}
