package domain

import (
	"fmt"
	"strings"
)

// Messages shown to users when an identifier has the wrong shape.
const (
	DNIFormatMessage        = "El DNI debe contener exactamente 8 dígitos."
	OfficeCodeFormatMessage = "El código de la DNA debe contener exactamente 5 dígitos."
	UbigeoFormatMessage     = "El código Ubigeo debe contener exactamente 6 dígitos."
)

// DNI is a Peruvian national identity document number (8 digits).
type DNI string

// OfficeCode identifies a registered DNA office (5 digits).
type OfficeCode string

// ParseDNI validates a raw DNI.
func ParseDNI(s string) (DNI, error) {
	s = strings.TrimSpace(s)
	if !isDigits(s, 8) {
		return "", fmt.Errorf("invalid DNI: must be exactly 8 digits")
	}
	return DNI(s), nil
}

// ParseOfficeCode validates a raw DNA office code.
func ParseOfficeCode(s string) (OfficeCode, error) {
	s = strings.TrimSpace(s)
	if !isDigits(s, 5) {
		return "", fmt.Errorf("invalid office code: must be exactly 5 digits")
	}
	return OfficeCode(s), nil
}

func (d DNI) String() string { return string(d) }

func (c OfficeCode) String() string { return string(c) }

// IsNumeric reports whether s is a non-empty run of ASCII digits.
func IsNumeric(s string) bool {
	return s != "" && isDigits(s, len(s))
}
