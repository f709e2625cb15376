package viewmodels

type Position struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Dynasty     string  `json:"dynasty"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	StartYear   *int    `json:"start_year"`
	EndYear     *int    `json:"end_year"`
	Rank        string  `json:"rank"`
	SuperiorID  *string `json:"superior_id"`
	Image       string  `json:"image"`
}

type Relationship struct {
	ID          string `json:"id"`
	SourceID    string `json:"source_id"`
	TargetID    string `json:"target_id"`
	Type        string `json:"relationship_type"`
	Description string `json:"description"`
}

// LunarConversion is the expanded conversion of one solar date: the
// lunar rendering plus the year, month and day pillars.
type LunarConversion struct {
	Solar       string `json:"solar"`
	Lunar       string `json:"lunar"`
	GanzhiYear  string `json:"ganzhi_year"`
	GanzhiMonth string `json:"ganzhi_month"`
	GanzhiDay   string `json:"ganzhi_day"`
}
