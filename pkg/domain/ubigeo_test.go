package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUbigeo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Ubigeo
		wantErr bool
	}{
		{name: "department", input: "080000", want: "080000"},
		{name: "trims whitespace", input: " 150101 ", want: "150101"},
		{name: "too short", input: "15010", wantErr: true},
		{name: "too long", input: "1501011", wantErr: true},
		{name: "non digit", input: "15O101", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUbigeo(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUbigeoSegments(t *testing.T) {
	u := Ubigeo("150132")
	assert.Equal(t, "15", u.Department())
	assert.Equal(t, "1501", u.DepartmentProvince())
	assert.Equal(t, UbigeoLevelDistrict, u.Level())

	assert.Equal(t, UbigeoLevelNational, UbigeoNational.Level())
	assert.Equal(t, UbigeoLevelDepartment, Ubigeo("080000").Level())
	assert.Equal(t, UbigeoLevelProvince, Ubigeo("080100").Level())
	assert.Equal(t, "", Ubigeo("").Department())
}

func TestSyntheticLimaCodes(t *testing.T) {
	assert.True(t, UbigeoLimaMetropolitana.IsSynthetic())
	assert.True(t, UbigeoLimaProvincia.IsSynthetic())
	assert.False(t, UbigeoLimaProvince.IsSynthetic())
	assert.False(t, Ubigeo("080000").IsSynthetic())
}

func TestParseIdentifiers(t *testing.T) {
	_, err := ParseDNI("4567890")
	assert.Error(t, err)
	_, err = ParseDNI("4567890a")
	assert.Error(t, err)
	dni, err := ParseDNI("45678901")
	require.NoError(t, err)
	assert.Equal(t, "45678901", dni.String())

	_, err = ParseOfficeCode("123456")
	assert.Error(t, err)
	code, err := ParseOfficeCode("01234")
	require.NoError(t, err)
	assert.Equal(t, "01234", code.String())

	assert.True(t, IsNumeric("0042"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
}
