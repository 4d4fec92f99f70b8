// Package models holds the CCONNA (consultative council) filter, status
// and row types.
package models

import (
	"net/url"
	"strings"

	"dsld/internal/filter"
	locationModels "dsld/internal/location/models"
	"dsld/internal/validity"
	dErrors "dsld/pkg/domain-errors"
)

// Subject is the noun used in the bar chart title.
const Subject = "CCONNA"

const (
	PieType     = "type"
	PieCreation = "creation"
	PieValidity = "validity"
	ExportName  = "cconna"
)

// Pie titles.
const (
	TypeTitle     = "Distribución por Tipo de CCONNA"
	CreationTitle = "Distribución por Estado de Creación"
	ValidityTitle = "Distribución por Estado de Vigencia"
)

// History labels.
const (
	HistoryTitle  = "Evolución Histórica Acumulada de CCONNA Creados"
	HistoryYLabel = "CCONNA Creados Acumulados"
)

const NoResultsMessage = "No se encontraron CCONNA para este ubigeo."

// Committee types as stored, trimmed.
const (
	TypeRegional   = "CCONNA Regional"
	TypeProvincial = "CCONNA Provincial"
	TypeDistrital  = "CCONNA Distrital"
)

// TypesFor returns the committee types selectable at a location depth
// (0 none, 1 department, 2 province, 3 district).
func TypesFor(depth int) []string {
	switch depth {
	case 0, 1:
		return []string{TypeRegional, TypeProvincial, TypeDistrital}
	case 2:
		return []string{TypeProvincial, TypeDistrital}
	default:
		return []string{TypeDistrital}
	}
}

// Creation labels, derived from the presence of an ordinance date.
const (
	Created    = "Creada"
	NotCreated = "No creada"
)

// CreationLabel returns Created when the committee has an ordinance date.
func CreationLabel(hasOrdinance bool) string {
	if hasOrdinance {
		return Created
	}
	return NotCreated
}

// Status filter values. Registration gates creation, creation gates
// operation.
const (
	Registered    = "registrada"
	NotRegistered = "no_registrada"
	Creada        = "creada"
	NoCreada      = "no_creada"
	Operativa     = "operativa"
	NoOperativa   = "no_operativa"
)

// Triggers name the status dropdown that changed.
const (
	TriggerRegistration = "registration"
	TriggerCreation     = "creation"
)

// StatusOptions are the fixed choices of the three status dropdowns.
type StatusOptions struct {
	Registration []locationModels.Option `json:"registration"`
	Creation     []locationModels.Option `json:"creation"`
	Operation    []locationModels.Option `json:"operation"`
}

// DefaultStatusOptions returns the status dropdown choices.
func DefaultStatusOptions() StatusOptions {
	return StatusOptions{
		Registration: []locationModels.Option{
			{Label: "No Registrada", Value: NotRegistered},
			{Label: "Registrada", Value: Registered},
		},
		Creation: []locationModels.Option{
			{Label: "No Creada", Value: NoCreada},
			{Label: "Creada", Value: Creada},
		},
		Operation: []locationModels.Option{
			{Label: "No Operativa", Value: NoOperativa},
			{Label: "Operativa", Value: Operativa},
		},
	}
}

// StatusState is the value and enablement of the status dropdowns after a
// change.
type StatusState struct {
	Registration      string `json:"registration"`
	Creation          string `json:"creation"`
	CreationDisabled  bool   `json:"creation_disabled"`
	Operation         string `json:"operation"`
	OperationDisabled bool   `json:"operation_disabled"`
}

// NextStatusState applies the dropdown rules after trigger changed. A
// registered committee defaults to not created; a created one defaults to
// not operating; anything else resets to not registered.
func NextStatusState(trigger, registration, creation string) StatusState {
	switch {
	case trigger == TriggerRegistration || registration == "":
		st := StatusState{Registration: registration, CreationDisabled: true, OperationDisabled: true}
		if registration == Registered {
			st.Creation = NoCreada
			st.CreationDisabled = false
		}
		return st
	case trigger == TriggerCreation:
		st := StatusState{Registration: registration, Creation: creation, OperationDisabled: true}
		if creation == Creada {
			st.Operation = NoOperativa
			st.OperationDisabled = false
		}
		return st
	default:
		return StatusState{Registration: NotRegistered, CreationDisabled: true, OperationDisabled: true}
	}
}

// Filter is the committees page selection. Location holds ubigeo codes;
// the department may be one of the synthetic Lima codes.
type Filter struct {
	Location     filter.Location
	Types        []string
	Registration string
	Creation     string
	Operation    string
}

// FilterFromQuery reads department, province, district, types,
// registration, creation and operation.
func FilterFromQuery(q url.Values) Filter {
	return Filter{
		Location:     filter.LocationFromQuery(q),
		Types:        filter.Values(q, "types"),
		Registration: strings.TrimSpace(q.Get("registration")),
		Creation:     strings.TrimSpace(q.Get("creation")),
		Operation:    strings.TrimSpace(q.Get("operation")),
	}
}

// Validate rejects unknown status values.
func (f Filter) Validate() error {
	if !oneOf(f.Registration, Registered, NotRegistered) {
		return dErrors.New(dErrors.CodeBadRequest, "registration must be registrada or no_registrada")
	}
	if !oneOf(f.Creation, Creada, NoCreada) {
		return dErrors.New(dErrors.CodeBadRequest, "creation must be creada or no_creada")
	}
	if !oneOf(f.Operation, Operativa, NoOperativa) {
		return dErrors.New(dErrors.CodeBadRequest, "operation must be operativa or no_operativa")
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	if v == "" {
		return true
	}
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Criteria is the part of a Filter evaluated in SQL: location names, types
// and creation. Operation depends on today and is applied after loading.
type Criteria struct {
	Location filter.Location
	Types    []string
	Created  *bool
}

// Committee is one council with its derived statuses.
type Committee struct {
	Ubigeo        string          `json:"ubigeo"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Region        string          `json:"region"`
	Province      string          `json:"province"`
	District      string          `json:"district"`
	OrdinanceDate string          `json:"ordinance_date"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Creation      string          `json:"creation"`
	Validity      validity.Status `json:"validity"`
}

// LocationAt returns the committee's location name at level.
func (c Committee) LocationAt(level filter.Level) string {
	switch level {
	case filter.LevelProvince:
		return c.Province
	case filter.LevelDistrict:
		return c.District
	default:
		return c.Region
	}
}

// ExportColumns are the spreadsheet headers of a committees export.
var ExportColumns = []string{
	"Ubigeo", "Nombre del CCONNA", "Tipo de CCONNA", "Región", "Provincia", "Distrito",
	"Fecha de la Ordenanza", "Fecha de inicio", "Fecha de término", "Estado de Creación", "Estado de Vigencia",
}

// ExportRow flattens c in ExportColumns order.
func (c Committee) ExportRow() []any {
	return []any{
		c.Ubigeo, c.Name, c.Type, c.Region, c.Province, c.District,
		c.OrdinanceDate, c.StartDate, c.EndDate, c.Creation, c.Validity.String(),
	}
}
