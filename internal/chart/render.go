package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is a server-side image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a file extension.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", s)
	}
}

// ContentType is the HTTP content type of f.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatSVG {
		return gochart.SVG
	}
	return gochart.PNG
}

const (
	canvasHeight = 512
	minWidth     = 800
	barSlot      = 48
)

var padding = gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}

// Render draws fig into w.
func Render(w io.Writer, fig Figure, format Format) error {
	var err error
	switch {
	case fig.Empty || len(fig.Values) == 0:
		err = renderPlaceholder(w, fig, format)
	case fig.Kind == KindPie:
		err = renderPie(w, fig, format)
	case fig.Kind == KindLine:
		err = renderLine(w, fig, format)
	default:
		err = renderBar(w, fig, format)
	}
	if err != nil {
		return fmt.Errorf("render %s chart: %w", fig.Kind, err)
	}
	return nil
}

// RenderBytes renders fig into a buffer.
func RenderBytes(fig Figure, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, fig, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderBar(w io.Writer, fig Figure, format Format) error {
	bars := make([]gochart.Value, 0, len(fig.Values))
	maxValue := 0.0
	for i, v := range fig.Values {
		bars = append(bars, gochart.Value{Label: fig.Labels[i], Value: v})
		maxValue = math.Max(maxValue, v)
	}
	width := minWidth
	if n := len(bars) * barSlot; n > width {
		width = n
	}
	bc := gochart.BarChart{
		Title:      fig.Title,
		Background: padding,
		Width:      width,
		Height:     canvasHeight,
		BarWidth:   barSlot * 2 / 3,
		Bars:       bars,
		XAxis:      gochart.Style{TextRotationDegrees: 45},
		YAxis: gochart.YAxis{
			Name:  fig.YLabel,
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Ceil(maxValue * 1.1)},
		},
	}
	return bc.Render(format.provider(), w)
}

func renderPie(w io.Writer, fig Figure, format Format) error {
	values := make([]gochart.Value, 0, len(fig.Values))
	for i, v := range fig.Values {
		if v <= 0 {
			continue
		}
		values = append(values, gochart.Value{Label: fig.Labels[i], Value: v})
	}
	if len(values) == 0 {
		return renderPlaceholder(w, fig, format)
	}
	pc := gochart.PieChart{
		Title:      fig.Title,
		Background: padding,
		Width:      canvasHeight,
		Height:     canvasHeight,
		Values:     values,
	}
	return pc.Render(format.provider(), w)
}

func renderLine(w io.Writer, fig Figure, format Format) error {
	xs := make([]time.Time, 0, len(fig.Labels)+1)
	ys := make([]float64, 0, len(fig.Values)+1)
	for i, label := range fig.Labels {
		day, err := time.Parse("2006-01-02", label)
		if err != nil {
			return fmt.Errorf("parse series day %q: %w", label, err)
		}
		xs = append(xs, day)
		ys = append(ys, fig.Values[i])
	}
	// go-chart needs a non-zero x range.
	if len(xs) == 1 {
		xs = append(xs, xs[0].AddDate(0, 0, 1))
		ys = append(ys, ys[0])
	}
	maxValue := 0.0
	for _, y := range ys {
		maxValue = math.Max(maxValue, y)
	}
	ch := gochart.Chart{
		Title:      fig.Title,
		Background: padding,
		Width:      minWidth,
		Height:     canvasHeight,
		XAxis: gochart.XAxis{
			Name:           fig.XLabel,
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			Name:  fig.YLabel,
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(1, math.Ceil(maxValue*1.1))},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{Name: fig.YLabel, XValues: xs, YValues: ys},
		},
	}
	return ch.Render(format.provider(), w)
}

// renderPlaceholder draws a titled canvas with an invisible series, since
// go-chart refuses to render a chart without data.
func renderPlaceholder(w io.Writer, fig Figure, format Format) error {
	ch := gochart.Chart{
		Title:      fig.Title,
		Background: padding,
		Width:      minWidth,
		Height:     canvasHeight,
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style:   gochart.Style{StrokeColor: drawing.ColorTransparent},
			},
		},
	}
	return ch.Render(format.provider(), w)
}
