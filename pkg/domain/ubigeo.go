package domain

import (
	"fmt"
	"strings"
)

// Ubigeo is a 6-digit Peruvian geographic code laid out as DDPPXX:
// department, province and district segments. Trailing zero segments mean
// "all of" that level.
type Ubigeo string

// UbigeoLevel is the granularity a code addresses.
type UbigeoLevel int

const (
	UbigeoLevelNational UbigeoLevel = iota
	UbigeoLevelDepartment
	UbigeoLevelProvince
	UbigeoLevelDistrict
)

// Well-known codes. The two synthetic department codes split Lima into its
// metropolitan province and the rest of the region; neither exists in the
// ubigeo table under that meaning.
const (
	UbigeoNational          Ubigeo = "000000"
	UbigeoLimaMetropolitana Ubigeo = "150000"
	UbigeoLimaProvincia     Ubigeo = "260000"
	UbigeoLimaProvince      Ubigeo = "150100"
)

// ParseUbigeo validates a raw code. Surrounding whitespace is ignored.
func ParseUbigeo(s string) (Ubigeo, error) {
	s = strings.TrimSpace(s)
	if !isDigits(s, 6) {
		return "", fmt.Errorf("invalid ubigeo %q: must be exactly 6 digits", s)
	}
	return Ubigeo(s), nil
}

// String returns the raw code.
func (u Ubigeo) String() string {
	return string(u)
}

// IsNil reports whether the code is unset.
func (u Ubigeo) IsNil() bool {
	return u == ""
}

// IsSynthetic reports whether the code is one of the Lima split codes.
func (u Ubigeo) IsSynthetic() bool {
	return u == UbigeoLimaMetropolitana || u == UbigeoLimaProvincia
}

// Department returns the two-digit department segment.
func (u Ubigeo) Department() string {
	if len(u) < 2 {
		return ""
	}
	return string(u[:2])
}

// DepartmentProvince returns the four-digit department+province segment.
func (u Ubigeo) DepartmentProvince() string {
	if len(u) < 4 {
		return ""
	}
	return string(u[:4])
}

// Level derives the granularity from the trailing zero segments.
func (u Ubigeo) Level() UbigeoLevel {
	switch {
	case u == UbigeoNational:
		return UbigeoLevelNational
	case strings.HasSuffix(string(u), "0000"):
		return UbigeoLevelDepartment
	case strings.HasSuffix(string(u), "00"):
		return UbigeoLevelProvince
	default:
		return UbigeoLevelDistrict
	}
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
