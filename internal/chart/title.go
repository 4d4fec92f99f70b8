package chart

import (
	"fmt"
	"strconv"
	"strings"

	"dsld/internal/filter"
)

// Placeholder titles shown when a filter matches nothing.
const (
	NoDataLocation = "No hay datos disponibles para la ubicación seleccionada."
	NoDataType     = "No hay datos disponibles para el tipo seleccionado."
	NoDataCreation = "No hay datos disponibles para el estado de creación seleccionado."
	NoDataValidity = "No hay datos disponibles para el estado de vigencia seleccionado."
	NoDataCategory = "No hay datos disponibles para los filtros seleccionados."
	NoDataTimeline = "No hay datos disponibles para el rango de fechas seleccionado."
)

// Title renders the bar chart title for subject (e.g. "Capacitaciones")
// over loc with the given total.
func Title(subject string, loc filter.Location, total int64) string {
	loc = loc.Normalized()
	var scope string
	switch loc.Depth() {
	case 0:
		scope = "por Departamento"
	case 1:
		scope = fmt.Sprintf("por Provincia en %s", loc.Department)
	case 2:
		scope = fmt.Sprintf("por Distrito en %s, %s", loc.Province, loc.Department)
	default:
		scope = fmt.Sprintf("en %s, %s, %s", loc.District, loc.Province, loc.Department)
	}
	return fmt.Sprintf("Número de %s %s: %d", subject, scope, total)
}

// ScopeFromTitle re-derives the location scope and total from a title built
// by Title. ok is false when the title does not have that shape.
func ScopeFromTitle(subject, title string) (loc filter.Location, total int64, ok bool) {
	prefix := "Número de " + subject + " "
	if !strings.HasPrefix(title, prefix) {
		return filter.Location{}, 0, false
	}
	rest := strings.TrimPrefix(title, prefix)
	sep := strings.LastIndex(rest, ": ")
	if sep < 0 {
		return filter.Location{}, 0, false
	}
	n, err := strconv.ParseInt(rest[sep+2:], 10, 64)
	if err != nil {
		return filter.Location{}, 0, false
	}
	scope := rest[:sep]

	switch {
	case scope == "por Departamento":
		return filter.Location{}, n, true
	case strings.HasPrefix(scope, "por Provincia en "):
		d := strings.TrimPrefix(scope, "por Provincia en ")
		return filter.Location{Department: d}, n, d != ""
	case strings.HasPrefix(scope, "por Distrito en "):
		parts := strings.SplitN(strings.TrimPrefix(scope, "por Distrito en "), ", ", 2)
		if len(parts) != 2 {
			return filter.Location{}, 0, false
		}
		return filter.Location{Department: parts[1], Province: parts[0]}, n, true
	case strings.HasPrefix(scope, "en "):
		parts := strings.SplitN(strings.TrimPrefix(scope, "en "), ", ", 3)
		if len(parts) != 3 {
			return filter.Location{}, 0, false
		}
		return filter.Location{Department: parts[2], Province: parts[1], District: parts[0]}, n, true
	default:
		return filter.Location{}, 0, false
	}
}

// PieTitle renders "Distribución de {subject} por {category}".
func PieTitle(subject, category string) string {
	return fmt.Sprintf("Distribución de %s por %s", subject, category)
}
