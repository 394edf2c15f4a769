package shiftplan

// TimeRange is an "HH:MM" interval inside one day.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Assignment is one scheduled shift for one person on one date. An off
// day carries empty times; the dispatch sub-ranges are only present on
// dispatch-typed assignments.
type Assignment struct {
	Start         string     `json:"start"`
	End           string     `json:"end"`
	IsOff         bool       `json:"is_off"`
	IsDispatch    bool       `json:"is_dispatch"`
	DispatchRange *TimeRange `json:"dispatch_range,omitempty"`
	PartTimeRange *TimeRange `json:"part_time_range,omitempty"`
	Location      string     `json:"location"`
	SourceLabel   string     `json:"source_label"`
}

// Key addresses an assignment by the sheet's free-text person name and
// the ISO date.
type Key struct {
	Name string
	Date string
}

// Calendar is the normalized shift schedule for one import pass. It is
// built fresh on each import and treated as read-only by downstream
// consumers within one reconciliation pass.
type Calendar map[Key]Assignment

// Set records an assignment. A later write for the same (name, date)
// overwrites an earlier one wholesale; partial fields are never merged.
func (c Calendar) Set(name, date string, a Assignment) {
	c[Key{Name: name, Date: date}] = a
}

// Lookup finds the assignment for a person on a date.
func (c Calendar) Lookup(name, date string) (Assignment, bool) {
	a, ok := c[Key{Name: name, Date: date}]
	return a, ok
}
