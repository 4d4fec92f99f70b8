package views

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"dsld/internal/chart"
	"dsld/internal/export"
	"dsld/internal/platform/metrics"
	dErrors "dsld/pkg/domain-errors"
	"dsld/pkg/platform/httputil"
)

// ParseChartFile splits a chart path segment such as "course.png" into the
// figure name and image format.
func ParseChartFile(file string) (string, chart.Format, error) {
	dot := strings.LastIndex(file, ".")
	if dot <= 0 {
		return "", "", dErrors.New(dErrors.CodeBadRequest, "chart file must be {name}.png or {name}.svg")
	}
	format, err := chart.ParseFormat(file[dot+1:])
	if err != nil {
		return "", "", dErrors.Wrap(err, dErrors.CodeBadRequest, "chart format must be png or svg")
	}
	return file[:dot], format, nil
}

// WriteChart renders the named figure of s.
func WriteChart(w http.ResponseWriter, s Summary, name string, format chart.Format, m *metrics.Metrics) error {
	fig, ok := s.Figure(name)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("unknown chart %q", name))
	}
	return WriteFigure(w, fig, format, m)
}

// WriteFigure renders fig as an image response.
func WriteFigure(w http.ResponseWriter, fig chart.Figure, format chart.Format, m *metrics.Metrics) error {
	body, err := chart.RenderBytes(fig, format)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	m.IncrementChartRendering(string(format))
	httputil.WriteBytes(w, format.ContentType(), body)
	return nil
}

// ParseExportFormat reads ?format=, defaulting to CSV.
func ParseExportFormat(s string) (export.Format, error) {
	f, err := export.ParseFormat(s)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "format must be csv or xlsx")
	}
	return f, nil
}

// WriteExport writes t as a file download.
func WriteExport(w http.ResponseWriter, t export.Table, f export.Format) error {
	var buf bytes.Buffer
	if err := export.Write(&buf, t, f); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(t.Name, f)))
	httputil.WriteBytes(w, f.ContentType(), buf.Bytes())
	return nil
}
