package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dsld/internal/chart"
)

func TestFold(t *testing.T) {
	bar, pies := Fold([]Group{
		{Location: "Cusco", Categories: []string{"Buen trato", "Responsable"}, Count: 2},
		{Location: "Cusco", Categories: []string{"Prevención"}, Count: 1},
		{Location: "Puno", Categories: []string{"Buen trato", "Defensor"}, Count: 4},
	}, 2)

	assert.Equal(t, []chart.Count{{Label: "Cusco", Value: 2}, {Label: "Cusco", Value: 1}, {Label: "Puno", Value: 4}}, bar)
	assert.Len(t, pies, 2)
	assert.Equal(t, []chart.Count{{Label: "Buen trato", Value: 2}, {Label: "Prevención", Value: 1}, {Label: "Buen trato", Value: 4}}, pies[0])
	assert.Equal(t, "", pies[1][1].Label)
}

func TestEventsByDay(t *testing.T) {
	events := EventsByDay([]DateCount{
		{Raw: "02/01/2024", Count: 2},
		{Raw: "2024-01-02", Count: 1},
		{Raw: "sin fecha", Count: 5},
		{Raw: "", Count: 3},
	})
	assert.Equal(t, map[string]int64{"2024-01-02": 3}, byISO(events))
}
