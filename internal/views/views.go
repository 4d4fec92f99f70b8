// Package views assembles the payloads shared by every dashboard page:
// summaries (bar plus pies), paginated tables, lookups and cumulative
// timelines. Dataset services fill them and handlers serialize them.
package views

import (
	"context"
	"log/slog"
	"time"

	"dsld/internal/chart"
	"dsld/internal/filter"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/pkg/requestcontext"
)

// Axis labels of every count-by-location bar chart.
const (
	LocationAxis = "Ubicación"
	DateAxis     = "Fecha"
)

// Summary is the aggregation view of one page.
type Summary struct {
	Total    int64        `json:"total"`
	Bar      chart.Figure `json:"bar"`
	Pies     []Pie        `json:"pies"`
	Degraded bool         `json:"degraded,omitempty"`
}

// Pie is a named proportion chart of a summary.
type Pie struct {
	Name string `json:"name"`
	chart.Figure
}

// BarName is the figure name of the location bar chart.
const BarName = "bar"

// Figure returns the named figure of the summary.
func (s Summary) Figure(name string) (chart.Figure, bool) {
	if name == BarName {
		return s.Bar, true
	}
	for _, p := range s.Pies {
		if p.Name == name {
			return p.Figure, true
		}
	}
	return chart.Figure{}, false
}

// BarChart builds the count-by-location chart for subject, or the location
// placeholder when nothing matched.
func BarChart(subject string, loc filter.Location, counts []chart.Count) chart.Figure {
	total := chart.Total(counts)
	if total == 0 {
		return chart.Placeholder(chart.KindBar, chart.NoDataLocation)
	}
	return chart.Bar(chart.Title(subject, loc, total), LocationAxis, "Número de "+subject, counts)
}

// PieChart builds a named proportion chart, or a placeholder titled noData
// when nothing matched.
func PieChart(name, title, noData string, counts []chart.Count) Pie {
	if chart.Total(counts) == 0 {
		return Pie{Name: name, Figure: chart.Placeholder(chart.KindPie, noData)}
	}
	return Pie{Name: name, Figure: chart.Pie(title, counts)}
}

// Table is one page of rows.
type Table[T any] struct {
	Rows      []T  `json:"rows"`
	Total     int  `json:"total"`
	Page      int  `json:"page"`
	PageSize  int  `json:"page_size"`
	PageCount int  `json:"page_count"`
	Degraded  bool `json:"degraded,omitempty"`
}

// NewTable wraps rows of page p out of total.
func NewTable[T any](rows []T, total int, p query.Page) Table[T] {
	if rows == nil {
		rows = []T{}
	}
	return Table[T]{
		Rows:      rows,
		Total:     total,
		Page:      p.Number,
		PageSize:  p.Size,
		PageCount: query.PageCount(total, p.Size),
	}
}

// DegradedTable is the empty page returned when the query failed.
func DegradedTable[T any](p query.Page) Table[T] {
	t := NewTable[T](nil, 0, p)
	t.Degraded = true
	return t
}

// Lookup is an identifier lookup result. Message is set exactly when there
// are no results.
type Lookup[T any] struct {
	Results  []T    `json:"results"`
	Message  string `json:"message,omitempty"`
	Degraded bool   `json:"degraded,omitempty"`
}

// NewLookup wraps results, attaching emptyMessage when there are none.
func NewLookup[T any](results []T, emptyMessage string) Lookup[T] {
	if len(results) == 0 {
		return Lookup[T]{Results: []T{}, Message: emptyMessage}
	}
	return Lookup[T]{Results: results}
}

// Timeline is a cumulative series over a date range.
type Timeline struct {
	From     string       `json:"from"`
	To       string       `json:"to"`
	Figure   chart.Figure `json:"figure"`
	Degraded bool         `json:"degraded,omitempty"`
}

// DefaultTimelineStart is the first day of a timeline without ?from=.
var DefaultTimelineStart = time.Date(2018, time.October, 1, 0, 0, 0, 0, time.UTC)

// CumulativeTimeline counts events per day into a running total over r.
// Events outside r are ignored.
func CumulativeTimeline(title, yLabel string, r filter.DateRange, events map[time.Time]int64) Timeline {
	inRange := make(map[time.Time]int64, len(events))
	for day, n := range events {
		if r.Contains(day) {
			inRange[day] += n
		}
	}

	t := Timeline{From: r.From.Format(time.DateOnly), To: r.To.Format(time.DateOnly)}
	if len(inRange) == 0 {
		t.Figure = chart.Placeholder(chart.KindLine, chart.NoDataTimeline)
		return t
	}
	t.Figure = chart.Line(title, DateAxis, yLabel, chart.Cumulative(r.Days(), inRange))
	return t
}

// DegradedTimeline is the placeholder timeline returned when the query
// failed.
func DegradedTimeline(r filter.DateRange) Timeline {
	return Timeline{
		From:     r.From.Format(time.DateOnly),
		To:       r.To.Format(time.DateOnly),
		Figure:   chart.Placeholder(chart.KindLine, chart.NoDataTimeline),
		Degraded: true,
	}
}

// Recorder times dataset queries and reports failures. Services call
// Observe after each store call and degrade when it returns true.
type Recorder struct {
	Dataset string
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Observe records one query and reports whether it failed.
func (r Recorder) Observe(ctx context.Context, operation string, start time.Time, err error) bool {
	r.Metrics.ObserveQuery(r.Dataset, operation, start)
	if err == nil {
		return false
	}
	r.Metrics.IncrementQueryFailure(r.Dataset, operation)
	if r.Logger != nil {
		r.Logger.ErrorContext(ctx, "dataset query failed",
			"dataset", r.Dataset,
			"operation", operation,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return true
}
