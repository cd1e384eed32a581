package domain

import (
	"time"
)

// Recommendation represents a single analyst recommendation record for a ticker,
// as produced by the loader from a per-ticker recommendations file.
type Recommendation struct {
	Date   time.Time `json:"date" validate:"required"`
	Firm   string    `json:"firm" validate:"required"`
	Action string    `json:"action" validate:"required"`

	// Optional grade fields present in some sources; not used for event
	// classification but carried for export and debugging.
	FromGrade string `json:"from_grade,omitempty"`
	ToGrade   string `json:"to_grade,omitempty"`
}

// EventDate returns the calendar date component of the recommendation
// rendered in ISO format (YYYY-MM-DD). The time-of-day portion only matters
// for same-day ordering, never for grouping.
func (r Recommendation) EventDate() string {
	return r.Date.Format("2006-01-02")
}
