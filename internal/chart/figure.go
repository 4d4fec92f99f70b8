// Package chart builds the figures shown on the dashboard: count-by-location
// bars, proportion pies and cumulative lines. Figures serialize to JSON for
// client-side plotting and render to PNG or SVG server-side.
package chart

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind is the figure type.
type Kind string

const (
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
	KindLine Kind = "line"
)

// UnknownLabel replaces blank category or location values.
const UnknownLabel = "Sin información"

// Figure describes a chart independently of the renderer.
type Figure struct {
	Kind   Kind      `json:"kind"`
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	Empty  bool      `json:"empty"`
}

// Count is one aggregated group.
type Count struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Point is one day of a cumulative series.
type Point struct {
	Day   time.Time `json:"day"`
	Value int64     `json:"value"`
}

// Total sums counts.
func Total(counts []Count) int64 {
	var n int64
	for _, c := range counts {
		n += c.Value
	}
	return n
}

// Merge sums counts sharing a label. Blank labels merge into UnknownLabel.
func Merge(counts []Count) []Count {
	idx := make(map[string]int, len(counts))
	out := make([]Count, 0, len(counts))
	for _, c := range counts {
		label := strings.TrimSpace(c.Label)
		if label == "" {
			label = UnknownLabel
		}
		if i, ok := idx[label]; ok {
			out[i].Value += c.Value
			continue
		}
		idx[label] = len(out)
		out = append(out, Count{Label: label, Value: c.Value})
	}
	return out
}

// newCollator returns a Spanish collator. Collators keep scratch buffers, so
// each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase)
}

// SortByLabel orders counts by label using Spanish collation.
func SortByLabel(counts []Count) {
	spanish := newCollator()
	sort.SliceStable(counts, func(i, j int) bool {
		return spanish.CompareString(counts[i].Label, counts[j].Label) < 0
	})
}

// SortByValue orders counts by value descending, then label.
func SortByValue(counts []Count) {
	spanish := newCollator()
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Value != counts[j].Value {
			return counts[i].Value > counts[j].Value
		}
		return spanish.CompareString(counts[i].Label, counts[j].Label) < 0
	})
}

// Bar builds a count-by-location bar chart sorted by label.
func Bar(title, xLabel, yLabel string, counts []Count) Figure {
	merged := Merge(counts)
	SortByLabel(merged)
	fig := fromCounts(KindBar, title, merged)
	fig.XLabel = xLabel
	fig.YLabel = yLabel
	return fig
}

// Pie builds a proportion chart sorted by count descending.
func Pie(title string, counts []Count) Figure {
	merged := Merge(counts)
	SortByValue(merged)
	return fromCounts(KindPie, title, merged)
}

// Line builds a cumulative series; labels are ISO dates.
func Line(title, xLabel, yLabel string, points []Point) Figure {
	fig := Figure{
		Kind:   KindLine,
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Labels: make([]string, 0, len(points)),
		Values: make([]float64, 0, len(points)),
	}
	for _, p := range points {
		fig.Labels = append(fig.Labels, p.Day.Format("2006-01-02"))
		fig.Values = append(fig.Values, float64(p.Value))
	}
	fig.Empty = len(points) == 0
	return fig
}

// Placeholder is the figure shown when a filter matches nothing.
func Placeholder(kind Kind, title string) Figure {
	return Figure{
		Kind:   kind,
		Title:  title,
		Labels: []string{},
		Values: []float64{},
		Empty:  true,
	}
}

func fromCounts(kind Kind, title string, counts []Count) Figure {
	fig := Figure{
		Kind:   kind,
		Title:  title,
		Labels: make([]string, 0, len(counts)),
		Values: make([]float64, 0, len(counts)),
	}
	for _, c := range counts {
		fig.Labels = append(fig.Labels, c.Label)
		fig.Values = append(fig.Values, float64(c.Value))
	}
	fig.Empty = len(counts) == 0
	return fig
}

// Cumulative turns per-day event counts into a running total for every day
// in days. Events before the first day are not counted.
func Cumulative(days []time.Time, events map[time.Time]int64) []Point {
	points := make([]Point, 0, len(days))
	var running int64
	for _, d := range days {
		running += events[d]
		points = append(points, Point{Day: d, Value: running})
	}
	return points
}
