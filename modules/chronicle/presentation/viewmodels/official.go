package viewmodels

type Official struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type OfficialRecord struct {
	Official     Official      `json:"official"`
	Appointments []Appointment `json:"appointments"`
}

type Connection struct {
	ID              int64  `json:"id"`
	FromPositionID  int64  `json:"from_position_id"`
	ToPositionID    int64  `json:"to_position_id"`
	Date            string `json:"date"`
	Label           string `json:"label"`
	Color           string `json:"color"`
	Style           string `json:"style"`
	IsVisible       bool   `json:"is_visible"`
	SourceText      string `json:"source_text"`
	SourceReference string `json:"source_reference"`
}

// DateConversion is the payload of the date-convert endpoint. Lunar is
// nil when the conversion library cannot handle the input date; the
// error string then explains why.
type DateConversion struct {
	Gregorian  string  `json:"gregorian"`
	Lunar      *string `json:"lunar"`
	LunarError string  `json:"lunar_error,omitempty"`
	Ganzhi     string  `json:"ganzhi"`
}
