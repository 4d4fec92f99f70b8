package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	locationModels "dsld/internal/location/models"
)

func TestDefaultSelectionKeepsAvailableDefaults(t *testing.T) {
	opts := locationModels.OptionsFromNames([]string{"Defensor", "Promotor", "Responsable"})
	assert.Equal(t, []string{"Defensor", "Responsable"}, DefaultSelection(opts))

	assert.Equal(t, []string{}, DefaultSelection(locationModels.OptionsFromNames([]string{"Promotor"})))
}

func TestFilterFromQuery(t *testing.T) {
	f := FilterFromQuery(url.Values{
		"roles":       {"Responsable", "Defensor"},
		"occupations": {"Abogado, Psicólogo"},
	})
	assert.Equal(t, []string{"Responsable", "Defensor"}, f.Roles)
	assert.Equal(t, []string{"Abogado", "Psicólogo"}, f.Occupations)
	assert.True(t, f.Location.IsZero())
}
