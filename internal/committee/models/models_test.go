package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsld/internal/filter"
	dErrors "dsld/pkg/domain-errors"
)

func TestTypesFor(t *testing.T) {
	assert.Equal(t, []string{TypeRegional, TypeProvincial, TypeDistrital}, TypesFor(0))
	assert.Equal(t, []string{TypeRegional, TypeProvincial, TypeDistrital}, TypesFor(1))
	assert.Equal(t, []string{TypeProvincial, TypeDistrital}, TypesFor(2))
	assert.Equal(t, []string{TypeDistrital}, TypesFor(3))
}

func TestNextStatusState(t *testing.T) {
	tests := []struct {
		name         string
		trigger      string
		registration string
		creation     string
		want         StatusState
	}{
		{
			name: "initial load leaves everything below registration disabled",
			want: StatusState{CreationDisabled: true, OperationDisabled: true},
		},
		{
			name:         "registered defaults creation to not created",
			trigger:      TriggerRegistration,
			registration: Registered,
			creation:     Creada,
			want:         StatusState{Registration: Registered, Creation: NoCreada, OperationDisabled: true},
		},
		{
			name:         "not registered clears creation",
			trigger:      TriggerRegistration,
			registration: NotRegistered,
			creation:     Creada,
			want:         StatusState{Registration: NotRegistered, CreationDisabled: true, OperationDisabled: true},
		},
		{
			name:         "created defaults operation to not operating",
			trigger:      TriggerCreation,
			registration: Registered,
			creation:     Creada,
			want:         StatusState{Registration: Registered, Creation: Creada, Operation: NoOperativa},
		},
		{
			name:         "not created disables operation",
			trigger:      TriggerCreation,
			registration: Registered,
			creation:     NoCreada,
			want:         StatusState{Registration: Registered, Creation: NoCreada, OperationDisabled: true},
		},
		{
			name:         "unknown trigger resets to not registered",
			trigger:      "operation",
			registration: Registered,
			creation:     Creada,
			want:         StatusState{Registration: NotRegistered, CreationDisabled: true, OperationDisabled: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStatusState(tt.trigger, tt.registration, tt.creation))
		})
	}
}

func TestFilterFromQueryAndValidate(t *testing.T) {
	f := FilterFromQuery(url.Values{
		"department": {"080000"},
		"types":      {"CCONNA Distrital"},
		"creation":   {"creada"},
	})
	assert.Equal(t, filter.Location{Department: "080000"}, f.Location)
	assert.Equal(t, []string{"CCONNA Distrital"}, f.Types)
	require.NoError(t, f.Validate())

	f.Operation = "vigente"
	assert.True(t, dErrors.HasCode(f.Validate(), dErrors.CodeBadRequest))
}

func TestCommitteeLocationAt(t *testing.T) {
	c := Committee{Region: "CUSCO", Province: "CALCA", District: "PISAC"}
	assert.Equal(t, "CUSCO", c.LocationAt(filter.LevelDepartment))
	assert.Equal(t, "CALCA", c.LocationAt(filter.LevelProvince))
	assert.Equal(t, "PISAC", c.LocationAt(filter.LevelDistrict))
}
