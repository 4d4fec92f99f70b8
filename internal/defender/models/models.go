// Package models holds the defenders (defensores) filter and row types.
package models

import (
	"net/url"

	"dsld/internal/filter"
	"dsld/internal/location/models"
)

// Subject is the plural noun used in chart titles.
const Subject = "Defensores"

const (
	PieRole       = "role"
	PieOccupation = "occupation"
	ExportName    = "defensores"
)

// Search messages.
const (
	EmptySearchMessage = "Ingrese un nombre, apellido o DNI."
	NoResultsMessage   = "No se encontraron defensores con los criterios de búsqueda proporcionados."
)

// Timeline labels.
const (
	TimelineTitle  = "Evolución Histórica Acumulada de Nombramientos"
	TimelineYLabel = "Nombramientos Acumulados"
)

// SearchLimit caps the results of one search.
const SearchLimit = 10

// DefaultRoles are preselected in the role filter when available.
var DefaultRoles = []string{"Responsable", "Defensor"}

// Filter is the defenders page selection. Locations are the names of the
// defender's office location.
type Filter struct {
	Location    filter.Location
	Roles       []string
	Occupations []string
}

// FilterFromQuery reads department, province, district, roles and
// occupations.
func FilterFromQuery(q url.Values) Filter {
	return Filter{
		Location:    filter.LocationFromQuery(q),
		Roles:       filter.Values(q, "roles"),
		Occupations: filter.Values(q, "occupations"),
	}
}

// RoleOptionList is the role dropdown with its default selection.
type RoleOptionList struct {
	Options  []models.Option `json:"options"`
	Default  []string        `json:"default"`
	Degraded bool            `json:"degraded,omitempty"`
}

// DefaultSelection returns the default roles present among options, in
// option order.
func DefaultSelection(options []models.Option) []string {
	out := []string{}
	for _, o := range options {
		for _, d := range DefaultRoles {
			if o.Label == d {
				out = append(out, o.Value)
				break
			}
		}
	}
	return out
}

// Defender is one table row.
type Defender struct {
	OfficeCode string `json:"office_code"`
	Names      string `json:"names"`
	Surname    string `json:"surname"`
	Role       string `json:"role"`
	DNI        string `json:"dni"`
	Occupation string `json:"occupation"`
}

// ExportColumns are the spreadsheet headers of a defenders export.
var ExportColumns = []string{"Código DNA", "Nombres", "Apellido", "Cargo", "DNI", "Ocupación"}

// ExportRow flattens d in ExportColumns order.
func (d Defender) ExportRow() []any {
	return []any{d.OfficeCode, d.Names, d.Surname, d.Role, d.DNI, d.Occupation}
}

// Match is one search result: the defender and their office location.
type Match struct {
	Defender
	Department string `json:"department"`
	Province   string `json:"province"`
	District   string `json:"district"`
}
