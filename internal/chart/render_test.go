package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderFigures(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	figures := map[string]Figure{
		"bar":         Bar("Número de DNA por Departamento: 9", "Ubicación", "Número", []Count{{Label: "PUNO", Value: 4}, {Label: "TACNA", Value: 5}}),
		"single bar":  Bar("b", "", "", []Count{{Label: "PUNO", Value: 4}}),
		"pie":         Pie("Distribución", []Count{{Label: "Vigente", Value: 3}, {Label: "No Vigente", Value: 1}}),
		"line":        Line("Acumulado", "Fecha", "Total", Cumulative([]time.Time{day, day.AddDate(0, 0, 1)}, map[time.Time]int64{day: 1})),
		"single line": Line("Acumulado", "Fecha", "Total", Cumulative([]time.Time{day}, nil)),
		"placeholder": Placeholder(KindBar, NoDataLocation),
	}
	for name, fig := range figures {
		t.Run(name, func(t *testing.T) {
			png, err := RenderBytes(fig, FormatPNG)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngMagic))

			svg, err := RenderBytes(fig, FormatSVG)
			require.NoError(t, err)
			assert.Contains(t, string(svg), "<svg")
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("svg")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", f.ContentType())
	assert.Equal(t, "image/png", FormatPNG.ContentType())

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}
