package nldate

import (
	"encoding/json"
	"time"
)

// Result is the outcome of extracting date/time information from free text.
// Exactly one of the two shapes is populated: an all-day date, or a timed
// start with an optional end.
type Result struct {
	AllDay bool

	// StartDate is the event date when AllDay is true. Only the date part
	// is meaningful.
	StartDate time.Time

	// Start and End are set when AllDay is false. End is nil when no end
	// time was found and no default applied.
	Start time.Time
	End   *time.Time
}

// resultJSON is the wire shape of Result.
type resultJSON struct {
	IsAllDay      bool   `json:"is_all_day"`
	StartDate     string `json:"start_date,omitempty"`
	StartDateTime string `json:"start_datetime,omitempty"`
	EndDateTime   string `json:"end_datetime,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{IsAllDay: r.AllDay}
	if r.AllDay {
		out.StartDate = r.StartDate.Format("2006-01-02")
	} else {
		out.StartDateTime = r.Start.Format(time.RFC3339)
		if r.End != nil {
			out.EndDateTime = r.End.Format(time.RFC3339)
		}
	}
	return json.Marshal(out)
}
