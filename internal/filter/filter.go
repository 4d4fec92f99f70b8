// Package filter parses dashboard filter selections from query strings and
// derives the grouping granularity they imply.
package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dsld/internal/query"
	dErrors "dsld/pkg/domain-errors"
	pstrings "dsld/pkg/platform/strings"
)

// Level is a location granularity.
type Level string

const (
	LevelDepartment Level = "department"
	LevelProvince   Level = "province"
	LevelDistrict   Level = "district"
)

// ParseLevel validates a path segment.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelDepartment, LevelProvince, LevelDistrict:
		return Level(s), nil
	default:
		return "", dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown location level %q", s))
	}
}

// Label is the Spanish noun used in chart titles.
func (l Level) Label() string {
	switch l {
	case LevelProvince:
		return "Provincia"
	case LevelDistrict:
		return "Distrito"
	default:
		return "Departamento"
	}
}

// Location is an optional department/province/district selection. Values
// are names or ubigeo codes depending on the dataset.
type Location struct {
	Department string `json:"department,omitempty"`
	Province   string `json:"province,omitempty"`
	District   string `json:"district,omitempty"`
}

// Grouping is the level the bar chart groups by: no location groups by
// department, a department by province, a province or district by district.
func (l Location) Grouping() Level {
	switch {
	case l.District != "" || l.Province != "":
		return LevelDistrict
	case l.Department != "":
		return LevelProvince
	default:
		return LevelDepartment
	}
}

// Depth is the most specific level selected: 0 none, 1 department,
// 2 province, 3 district.
func (l Location) Depth() int {
	switch {
	case l.District != "":
		return 3
	case l.Province != "":
		return 2
	case l.Department != "":
		return 1
	default:
		return 0
	}
}

// IsZero reports whether no location is selected.
func (l Location) IsZero() bool {
	return l.Depth() == 0
}

// Normalized drops levels below the first unset one, so a district without
// its province is ignored the same way the cascading dropdowns ignore it.
func (l Location) Normalized() Location {
	if l.Department == "" {
		return Location{}
	}
	if l.Province == "" {
		return Location{Department: l.Department}
	}
	return l
}

// Cascades reports whether the options of level can be listed under l:
// departments always, provinces once a department is chosen, districts once
// both department and province are.
func (l Location) Cascades(level Level) bool {
	switch level {
	case LevelDepartment:
		return true
	case LevelProvince:
		return l.Department != ""
	case LevelDistrict:
		return l.Department != "" && l.Province != ""
	default:
		return false
	}
}

// LocationFromQuery reads department, province and district parameters.
func LocationFromQuery(q url.Values) Location {
	return Location{
		Department: strings.TrimSpace(q.Get("department")),
		Province:   strings.TrimSpace(q.Get("province")),
		District:   strings.TrimSpace(q.Get("district")),
	}
}

// Values reads a multi-valued parameter. Repeated keys and comma-separated
// lists are both accepted; blanks and duplicates are dropped.
func Values(q url.Values, key string) []string {
	raw := q[key]
	if len(raw) == 0 {
		return nil
	}
	var out []string
	for _, v := range raw {
		out = append(out, strings.Split(v, ",")...)
	}
	out = pstrings.DedupeAndTrim(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// PageFromQuery reads page and page_size. Malformed numbers are a bad request.
func PageFromQuery(q url.Values, def, max int) (query.Page, error) {
	var p query.Page
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return query.Page{}, dErrors.New(dErrors.CodeBadRequest, "page must be an integer")
		}
		p.Number = n
	}
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return query.Page{}, dErrors.New(dErrors.CodeBadRequest, "page_size must be an integer")
		}
		p.Size = n
	}
	return p.Normalize(def, max), nil
}

// DateRange is an inclusive calendar range.
type DateRange struct {
	From time.Time
	To   time.Time
}

const dateLayout = "2006-01-02"

// MaxRangeYears bounds timeline ranges; each day becomes a chart point.
const MaxRangeYears = 40

// DateRangeFromQuery reads from/to as YYYY-MM-DD. Missing bounds default to
// fallbackFrom and today.
func DateRangeFromQuery(q url.Values, fallbackFrom, today time.Time) (DateRange, error) {
	return ParseDateRange(q.Get("from"), q.Get("to"), fallbackFrom, today)
}

// ParseDateRange validates raw from/to bounds.
func ParseDateRange(from, to string, fallbackFrom, today time.Time) (DateRange, error) {
	r := DateRange{From: fallbackFrom, To: today}
	if v := strings.TrimSpace(from); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return DateRange{}, dErrors.New(dErrors.CodeBadRequest, "from must be a date in YYYY-MM-DD format")
		}
		r.From = t
	}
	if v := strings.TrimSpace(to); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return DateRange{}, dErrors.New(dErrors.CodeBadRequest, "to must be a date in YYYY-MM-DD format")
		}
		r.To = t
	}
	if r.To.Before(r.From) {
		return DateRange{}, dErrors.New(dErrors.CodeBadRequest, "from must not be after to")
	}
	if r.To.After(r.From.AddDate(MaxRangeYears, 0, 0)) {
		return DateRange{}, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("date range must not exceed %d years", MaxRangeYears))
	}
	return r, nil
}

// Days lists every calendar day in the range.
func (r DateRange) Days() []time.Time {
	var out []time.Time
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Contains reports whether day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	return !day.Before(r.From) && !day.After(r.To)
}
