package views

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsld/internal/chart"
	"dsld/internal/filter"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
)

func TestBarChart(t *testing.T) {
	fig := BarChart("Capacitaciones", filter.Location{Department: "Cusco"}, []chart.Count{
		{Label: "Cusco", Value: 3},
		{Label: "Acomayo", Value: 2},
	})
	assert.Equal(t, "Número de Capacitaciones por Provincia en Cusco: 5", fig.Title)
	assert.Equal(t, []string{"Acomayo", "Cusco"}, fig.Labels)
	assert.Equal(t, LocationAxis, fig.XLabel)
	assert.Equal(t, "Número de Capacitaciones", fig.YLabel)
	assert.False(t, fig.Empty)
}

func TestBarChartPlaceholder(t *testing.T) {
	fig := BarChart("Capacitaciones", filter.Location{}, nil)
	assert.True(t, fig.Empty)
	assert.Equal(t, chart.NoDataLocation, fig.Title)
}

func TestPieChart(t *testing.T) {
	pie := PieChart("course", "Distribución de Capacitaciones por Curso", chart.NoDataCategory, []chart.Count{{Label: "A", Value: 1}})
	assert.Equal(t, "course", pie.Name)
	assert.False(t, pie.Empty)

	empty := PieChart("course", "ignored", chart.NoDataType, nil)
	assert.True(t, empty.Empty)
	assert.Equal(t, chart.NoDataType, empty.Title)
}

func TestSummaryFigure(t *testing.T) {
	s := Summary{
		Bar:  chart.Placeholder(chart.KindBar, chart.NoDataLocation),
		Pies: []Pie{{Name: "course", Figure: chart.Placeholder(chart.KindPie, chart.NoDataCategory)}},
	}
	fig, ok := s.Figure(BarName)
	require.True(t, ok)
	assert.Equal(t, chart.KindBar, fig.Kind)

	fig, ok = s.Figure("course")
	require.True(t, ok)
	assert.Equal(t, chart.KindPie, fig.Kind)

	_, ok = s.Figure("missing")
	assert.False(t, ok)
}

func TestNewTable(t *testing.T) {
	tbl := NewTable([]string{"a", "b"}, 25, query.Page{Number: 1, Size: 10})
	assert.Equal(t, 3, tbl.PageCount)
	assert.Equal(t, 1, tbl.Page)

	empty := DegradedTable[string](query.Page{Size: 10})
	assert.NotNil(t, empty.Rows)
	assert.True(t, empty.Degraded)
	assert.Equal(t, 1, empty.PageCount)
}

func TestNewLookup(t *testing.T) {
	none := NewLookup[string](nil, "sin resultados")
	assert.Equal(t, "sin resultados", none.Message)
	assert.NotNil(t, none.Results)

	some := NewLookup([]string{"x"}, "sin resultados")
	assert.Empty(t, some.Message)
	assert.Len(t, some.Results, 1)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCumulativeTimelineCountsOnlyEventsInRange(t *testing.T) {
	r := filter.DateRange{From: day(2024, 1, 1), To: day(2024, 1, 3)}
	tl := CumulativeTimeline("Evolución", "Acumulado", r, map[time.Time]int64{
		day(2023, 6, 1): 4,
		day(2024, 1, 1): 2,
		day(2024, 1, 3): 1,
		day(2024, 2, 1): 9,
	})
	assert.Equal(t, "2024-01-01", tl.From)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, tl.Figure.Labels)
	assert.Equal(t, []float64{2, 2, 3}, tl.Figure.Values)
	assert.Equal(t, DateAxis, tl.Figure.XLabel)
}

func TestCumulativeTimelineWithoutEventsInRange(t *testing.T) {
	r := filter.DateRange{From: day(2024, 1, 1), To: day(2024, 1, 3)}
	tl := CumulativeTimeline("Evolución", "Acumulado", r, map[time.Time]int64{day(2023, 1, 1): 2})
	assert.True(t, tl.Figure.Empty)
	assert.Equal(t, chart.NoDataTimeline, tl.Figure.Title)
}

func TestRecorderObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)
	var buf bytes.Buffer
	r := Recorder{Dataset: "trainings", Logger: slog.New(slog.NewJSONHandler(&buf, nil)), Metrics: m}

	assert.False(t, r.Observe(context.Background(), "summary", time.Now(), nil))
	assert.Empty(t, buf.String())

	assert.True(t, r.Observe(context.Background(), "summary", time.Now(), errors.New("boom")))
	assert.Contains(t, buf.String(), "dataset query failed")
	assert.Equal(t, 1.0, promtest.ToFloat64(m.QueryFailures.WithLabelValues("trainings", "summary")))
}

func byISO(events map[time.Time]int64) map[string]int64 {
	out := make(map[string]int64, len(events))
	for d, n := range events {
		out[d.Format(time.DateOnly)] = n
	}
	return out
}
