package views

import (
	"time"

	"dsld/internal/chart"
	"dsld/internal/validity"
)

// Group is one aggregated row: the location label, the value of each pie
// category, and the number of records sharing them.
type Group struct {
	Location   string
	Categories []string
	Count      int64
}

// Fold sums groups into bar counts by location and one count series per
// category position.
func Fold(groups []Group, categories int) (bar []chart.Count, pies [][]chart.Count) {
	pies = make([][]chart.Count, categories)
	for _, g := range groups {
		bar = append(bar, chart.Count{Label: g.Location, Value: g.Count})
		for i := 0; i < categories; i++ {
			var label string
			if i < len(g.Categories) {
				label = g.Categories[i]
			}
			pies[i] = append(pies[i], chart.Count{Label: label, Value: g.Count})
		}
	}
	return bar, pies
}

// DateCount is the number of records sharing one raw date text.
type DateCount struct {
	Raw   string
	Count int64
}

// EventsByDay parses raw dates and sums counts per calendar day. Rows with
// unparseable dates are skipped.
func EventsByDay(rows []DateCount) map[time.Time]int64 {
	events := make(map[time.Time]int64, len(rows))
	for _, r := range rows {
		day, ok := validity.ParseDate(r.Raw)
		if !ok {
			continue
		}
		events[day] += r.Count
	}
	return events
}
