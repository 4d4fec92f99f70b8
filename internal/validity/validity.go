// Package validity derives the vigencia (validity) status of a record from
// its free-form start and end dates.
package validity

import (
	"context"
	"strings"
	"time"

	"dsld/pkg/requestcontext"
)

// Status is the derived vigencia of a record.
type Status string

const (
	Active    Status = "Vigente"
	NotActive Status = "No Vigente"
)

func (s Status) String() string { return string(s) }

// IsActive reports whether s is Active.
func (s Status) IsActive() bool { return s == Active }

// primaryLayouts are tried in order; the first success wins. Source tables
// mix day-first dates, bare years and ISO dates.
var primaryLayouts = []string{
	"2/1/2006",
	"2006",
	"2006-1-2",
	"2-1-2006",
}

var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2006/1/2",
	"2.1.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParseDate parses a free-form date. Only the calendar day is kept; the
// result is midnight UTC of that day. Blank input is unparseable.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range primaryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOf(t), true
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOf(t), true
		}
	}
	return time.Time{}, false
}

// Derive computes vigencia: an unparseable start is never active, an
// unparseable end leaves the record open-ended.
func Derive(start, end string, today time.Time) Status {
	startDate, ok := ParseDate(start)
	if !ok {
		return NotActive
	}
	day := dateOf(today)
	if day.Before(startDate) {
		return NotActive
	}
	endDate, ok := ParseDate(end)
	if !ok {
		return Active
	}
	if day.After(endDate) {
		return NotActive
	}
	return Active
}

// Clock resolves "today" for a request in the dashboard time zone.
type Clock struct {
	loc *time.Location
}

// NewClock returns a clock for loc; nil means UTC.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{loc: loc}
}

// Today returns the request-scoped calendar day.
func (c Clock) Today(ctx context.Context) time.Time {
	loc := c.loc
	if loc == nil {
		loc = time.UTC
	}
	return dateOf(requestcontext.Now(ctx).In(loc))
}

// Derive is Derive evaluated at the request's "today".
func (c Clock) Derive(ctx context.Context, start, end string) Status {
	return Derive(start, end, c.Today(ctx))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
