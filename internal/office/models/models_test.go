package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestStaffTotalsTreatMissingAsZero(t *testing.T) {
	o := Office{
		DefendersFemale: intp(2),
		PromotersFemale: nil,
		OthersFemale:    intp(1),
		DefendersMale:   intp(1),
	}
	assert.Equal(t, 3, o.TotalWomen())
	assert.Equal(t, 1, o.TotalMen())
}

func TestRecordFieldOrder(t *testing.T) {
	rec := Office{Code: "01234", Model: "Municipal", DefendersFemale: intp(2), OthersMale: intp(4)}.Record()
	require.Len(t, rec.Fields, 32)
	assert.Equal(t, "01234", rec.Code)
	assert.Equal(t, Field{"Tipo de DNA", "Municipal"}, rec.Fields[0])
	assert.Equal(t, Field{"Defensoras", "2"}, rec.Fields[18])
	assert.Equal(t, Field{"Promotoras", ""}, rec.Fields[20])
	assert.Equal(t, Field{"Total Mujeres", "2"}, rec.Fields[24])
	assert.Equal(t, Field{"Total Hombres", "4"}, rec.Fields[25])
	assert.Equal(t, "DNA Fortalecida", rec.Fields[31].Label)
}

func TestFilterFromQuery(t *testing.T) {
	f := FilterFromQuery(url.Values{"department": {"CUSCO"}, "states": {"Acreditada,No acreditada"}})
	assert.Equal(t, "CUSCO", f.Location.Department)
	assert.Equal(t, []string{"Acreditada", "No acreditada"}, f.States)
}
