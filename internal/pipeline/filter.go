package pipeline

import (
	"time"

	"github.com/mkureth/ring-video-downloader/pkg/models"
)

const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD argument into the target day for
// filtering. The day is interpreted in UTC, the same zone events are
// reduced to, so the comparison never depends on the host locale.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}

// MatchesDate reports whether an event falls on the target calendar
// day. A zero day disables filtering and matches everything. Both sides
// are reduced to a UTC day string and compared for exact equality; an
// event whose timestamp cannot be parsed never matches a set day.
func MatchesDate(e models.Event, day time.Time) bool {
	if day.IsZero() {
		return true
	}
	t, err := time.Parse(time.RFC3339, e.CreatedAt)
	if err != nil {
		return false
	}
	return t.UTC().Format(dayLayout) == day.UTC().Format(dayLayout)
}

// FilterByDate keeps the events matching the target day, preserving
// order. A zero day returns the input unchanged.
func FilterByDate(events []models.Event, day time.Time) []models.Event {
	if day.IsZero() {
		return events
	}
	var out []models.Event
	for _, e := range events {
		if MatchesDate(e, day) {
			out = append(out, e)
		}
	}
	return out
}
