// Package models holds the offices (DNA) filter, table and record types.
package models

import (
	"net/url"
	"strconv"

	"dsld/internal/filter"
)

// Subject is the plural noun used in chart titles.
const Subject = "Defensorías"

const (
	PieState   = "state"
	ExportName = "defensorias"
)

// NoResultsMessage is returned by a well-formed code lookup without match.
const NoResultsMessage = "No se encontraron resultados para esta DNA."

// Filter is the offices page selection. Locations are names as stored in
// the dna table.
type Filter struct {
	Location filter.Location
	States   []string
}

// FilterFromQuery reads department, province, district and states.
func FilterFromQuery(q url.Values) Filter {
	return Filter{
		Location: filter.LocationFromQuery(q),
		States:   filter.Values(q, "states"),
	}
}

// Summary is one table row.
type Summary struct {
	Code               string `json:"code"`
	Model              string `json:"model"`
	Department         string `json:"department"`
	Province           string `json:"province"`
	District           string `json:"district"`
	AccreditationState string `json:"accreditation_state"`
	RegistrationState  string `json:"registration_state"`
}

// ExportColumns are the spreadsheet headers of an office export.
var ExportColumns = []string{
	"Código", "Tipo de DNA", "Departamento", "Provincia", "Distrito",
	"Estado de Acreditación", "Estado de Registro",
}

// ExportRow flattens s in ExportColumns order.
func (s Summary) ExportRow() []any {
	return []any{s.Code, s.Model, s.Department, s.Province, s.District, s.AccreditationState, s.RegistrationState}
}

// Office is the full dna row. Staff counts are nil when not recorded.
type Office struct {
	Code                    string
	Model                   string
	Department              string
	Province                string
	District                string
	AccreditationState      string
	AccreditationDate       string
	AccreditationResolution string
	Address                 string
	Phone                   string
	Email                   string
	OpeningHours            string
	CreationDate            string
	CreationResolution      string
	ROFDate                 string
	ROFResolution           string
	RegistrationState       string
	RegistrationDate        string
	RegistrationResolution  string
	DefendersFemale         *int
	DefendersMale           *int
	PromotersFemale         *int
	PromotersMale           *int
	OthersFemale            *int
	OthersMale              *int
	SupervisionDate         string
	SupervisionNotes        string
	LastCourse              string
	LastCourseDate          string
	CommitteeDate           string
	Strengthened            string
}

// TotalWomen sums female defenders, promoters and others; missing counts
// are zero.
func (o Office) TotalWomen() int {
	return value(o.DefendersFemale) + value(o.PromotersFemale) + value(o.OthersFemale)
}

// TotalMen sums male defenders, promoters and others; missing counts are
// zero.
func (o Office) TotalMen() int {
	return value(o.DefendersMale) + value(o.PromotersMale) + value(o.OthersMale)
}

func value(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// Field is one labelled value of a lookup record.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Record is the lookup view of one office: its code and display fields in
// presentation order.
type Record struct {
	Code   string  `json:"code"`
	Fields []Field `json:"fields"`
}

// Record lays o out for display, with the derived staff totals placed
// after the individual counts.
func (o Office) Record() Record {
	return Record{
		Code: o.Code,
		Fields: []Field{
			{"Tipo de DNA", o.Model},
			{"Departamento", o.Department},
			{"Provincia", o.Province},
			{"Distrito", o.District},
			{"Estado de Acreditación", o.AccreditationState},
			{"Fecha de Acreditación", o.AccreditationDate},
			{"Resolución de Acreditación", o.AccreditationResolution},
			{"Dirección DNA", o.Address},
			{"Teléfono DNA", o.Phone},
			{"Correo electrónico DNA", o.Email},
			{"Horario de atención", o.OpeningHours},
			{"Fecha Resolución de Creación", o.CreationDate},
			{"Resolución de Creación", o.CreationResolution},
			{"Fecha Resolución de ROF", o.ROFDate},
			{"Resolución de ROF", o.ROFResolution},
			{"Estado de Registro", o.RegistrationState},
			{"Fecha de Registro", o.RegistrationDate},
			{"Resolución de Inscripción", o.RegistrationResolution},
			{"Defensoras", count(o.DefendersFemale)},
			{"Defensores", count(o.DefendersMale)},
			{"Promotoras", count(o.PromotersFemale)},
			{"Promotores", count(o.PromotersMale)},
			{"Otras", count(o.OthersFemale)},
			{"Otros", count(o.OthersMale)},
			{"Total Mujeres", strconv.Itoa(o.TotalWomen())},
			{"Total Hombres", strconv.Itoa(o.TotalMen())},
			{"Última fecha de supervisión", o.SupervisionDate},
			{"Observaciones de la supervisión", o.SupervisionNotes},
			{"Último curso", o.LastCourse},
			{"Fecha del último curso", o.LastCourseDate},
			{"Fecha CCONNA", o.CommitteeDate},
			{"DNA Fortalecida", o.Strengthened},
		},
	}
}

func count(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
