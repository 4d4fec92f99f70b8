// Package models holds the location filter types: dropdown options and the
// code scopes that select them.
package models

import (
	"strings"

	"dsld/internal/filter"
	"dsld/pkg/domain"
)

// Fixed names of the synthetic Lima codes.
const (
	LimaMetropolitanaName = "Lima Metropolitana"
	LimaProvinciaName     = "Lima Provincia"
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionList is an options response. Degraded is set when the backing query
// failed and the list was replaced by an empty one.
type OptionList struct {
	Options  []Option `json:"options"`
	Degraded bool     `json:"degraded,omitempty"`
}

// OptionsFromNames builds options whose label and value are the same name.
func OptionsFromNames(names []string) []Option {
	out := make([]Option, 0, len(names))
	for _, n := range names {
		out = append(out, Option{Label: n, Value: n})
	}
	return out
}

// Scope selects ubigeo rows either by exact codes or by a LIKE pattern with
// exclusions. The zero Scope selects nothing.
type Scope struct {
	Codes   []string
	Pattern string
	Exclude []string
}

// IsEmpty reports whether the scope selects nothing.
func (s Scope) IsEmpty() bool {
	return len(s.Codes) == 0 && s.Pattern == ""
}

// Matches evaluates the scope against one code. "_" in Pattern matches any
// single character, as in SQL LIKE.
func (s Scope) Matches(code string) bool {
	if s.IsEmpty() {
		return false
	}
	for _, ex := range s.Exclude {
		if code == ex {
			return false
		}
	}
	if len(s.Codes) > 0 {
		found := false
		for _, c := range s.Codes {
			if c == code {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if s.Pattern != "" {
		if len(code) != len(s.Pattern) {
			return false
		}
		for i := 0; i < len(code); i++ {
			if s.Pattern[i] != '_' && s.Pattern[i] != code[i] {
				return false
			}
		}
	}
	return true
}

// ScopeFor resolves which ubigeo rows are options at level under parent.
// A blank or malformed parent yields the empty scope for province and
// district, never the whole country.
func ScopeFor(level filter.Level, parent string) Scope {
	switch level {
	case filter.LevelDepartment:
		return Scope{Pattern: "__0000", Exclude: []string{domain.UbigeoNational.String()}}
	case filter.LevelProvince:
		code, err := domain.ParseUbigeo(parent)
		if err != nil {
			return Scope{}
		}
		switch code {
		case domain.UbigeoLimaMetropolitana:
			return Scope{Codes: []string{domain.UbigeoLimaProvince.String()}}
		case domain.UbigeoLimaProvincia:
			return Scope{
				Pattern: "15__00",
				Exclude: []string{domain.UbigeoLimaMetropolitana.String(), domain.UbigeoLimaProvince.String()},
			}
		default:
			dd := code.Department()
			return Scope{Pattern: dd + "__00", Exclude: []string{dd + "0000"}}
		}
	case filter.LevelDistrict:
		code, err := domain.ParseUbigeo(parent)
		if err != nil {
			return Scope{}
		}
		ddpp := code.DepartmentProvince()
		return Scope{Pattern: ddpp + "__", Exclude: []string{ddpp + "00"}}
	default:
		return Scope{}
	}
}

// SyntheticName returns the fixed name of a synthetic Lima code.
func SyntheticName(code string) (string, bool) {
	switch domain.Ubigeo(strings.TrimSpace(code)) {
	case domain.UbigeoLimaMetropolitana:
		return LimaMetropolitanaName, true
	case domain.UbigeoLimaProvincia:
		return LimaProvinciaName, true
	default:
		return "", false
	}
}

// SplitLima replaces the department option for code 150000 with the two
// synthetic options, keeping their position in the list.
func SplitLima(departments []Option) []Option {
	out := make([]Option, 0, len(departments)+1)
	for _, o := range departments {
		if o.Value == domain.UbigeoLimaMetropolitana.String() {
			out = append(out,
				Option{Label: LimaMetropolitanaName, Value: domain.UbigeoLimaMetropolitana.String()},
				Option{Label: LimaProvinciaName, Value: domain.UbigeoLimaProvincia.String()},
			)
			continue
		}
		out = append(out, o)
	}
	return out
}
