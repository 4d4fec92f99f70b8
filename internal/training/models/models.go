// Package models holds the trainings (capacitaciones) filter and row types.
package models

import (
	"net/url"

	"dsld/internal/filter"
)

// Subject is the plural noun used in chart titles.
const Subject = "Capacitaciones"

// Pie and export names.
const (
	PieCourse  = "course"
	ExportName = "capacitaciones"
)

// Lookup messages.
const NoResultsMessage = "No se encontraron resultados para este DNI."

// Timeline labels.
const (
	TimelineTitle  = "Evolución Histórica Acumulada de Participantes"
	TimelineYLabel = "Participantes Acumulados"
)

// Filter is the trainings page selection. Locations are names as stored in
// the capacitaciones table.
type Filter struct {
	Location filter.Location
	Courses  []string
}

// FilterFromQuery reads department, province, district and courses.
func FilterFromQuery(q url.Values) Filter {
	return Filter{
		Location: filter.LocationFromQuery(q),
		Courses:  filter.Values(q, "courses"),
	}
}

// Participation is one training record of a person, as returned by the DNI
// lookup.
type Participation struct {
	Year       *int   `json:"year"`
	Course     string `json:"course"`
	Department string `json:"department"`
	Province   string `json:"province"`
	District   string `json:"district"`
	Venue      string `json:"venue"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Grade      string `json:"grade"`
	Condition  string `json:"condition"`
}

// Session is one table row: a course edition at a location with its number
// of participants.
type Session struct {
	Year         *int   `json:"year"`
	Course       string `json:"course"`
	Venue        string `json:"venue"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Department   string `json:"department"`
	Province     string `json:"province"`
	District     string `json:"district"`
	Participants int64  `json:"participants"`
}

// ExportColumns are the spreadsheet headers of a session export.
var ExportColumns = []string{
	"AÑO", "CURSO", "SEDE DE CAPACITACIÓN", "FECHA INICIO CURSO", "FECHA CULMINA CURSO",
	"DEPARTAMENTO", "PROVINCIA", "DISTRITO", "PARTICIPANTES",
}

// ExportRow flattens s in ExportColumns order.
func (s Session) ExportRow() []any {
	var year any
	if s.Year != nil {
		year = *s.Year
	}
	return []any{year, s.Course, s.Venue, s.StartDate, s.EndDate, s.Department, s.Province, s.District, s.Participants}
}
