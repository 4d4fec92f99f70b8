package filter

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsld/internal/query"
	dErrors "dsld/pkg/domain-errors"
)

func TestGroupingFollowsSpecificity(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want Level
	}{
		{name: "none", loc: Location{}, want: LevelDepartment},
		{name: "department", loc: Location{Department: "CUSCO"}, want: LevelProvince},
		{name: "province", loc: Location{Department: "CUSCO", Province: "URUBAMBA"}, want: LevelDistrict},
		{name: "district", loc: Location{Department: "CUSCO", Province: "URUBAMBA", District: "MARAS"}, want: LevelDistrict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.Grouping())
		})
	}
}

func TestNormalizedDropsOrphanLevels(t *testing.T) {
	assert.Equal(t, Location{}, Location{Province: "X", District: "Y"}.Normalized())
	assert.Equal(t, Location{Department: "A"}, Location{Department: "A", District: "Y"}.Normalized())
	full := Location{Department: "A", Province: "B", District: "C"}
	assert.Equal(t, full, full.Normalized())
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("province")
	require.NoError(t, err)
	assert.Equal(t, LevelProvince, l)

	_, err = ParseLevel("region")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	assert.Equal(t, "Distrito", LevelDistrict.Label())
}

func TestValues(t *testing.T) {
	q := url.Values{"courses": {"A, B", "B", " ", "C"}}
	assert.Equal(t, []string{"A", "B", "C"}, Values(q, "courses"))
	assert.Nil(t, Values(q, "missing"))
	assert.Nil(t, Values(url.Values{"x": {" , "}}, "x"))
}

func TestValuesKeepSpellingsDistinct(t *testing.T) {
	q := url.Values{"types": {"Regional,REGIONAL", "Regional"}}
	assert.Equal(t, []string{"Regional", "REGIONAL"}, Values(q, "types"))
}

func TestPageFromQuery(t *testing.T) {
	p, err := PageFromQuery(url.Values{"page": {"2"}, "page_size": {"500"}}, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, query.Page{Number: 2, Size: 100}, p)

	p, err = PageFromQuery(url.Values{}, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, query.Page{Number: 0, Size: 10}, p)

	_, err = PageFromQuery(url.Values{"page": {"two"}}, 10, 100)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestDateRangeFromQuery(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	r, err := DateRangeFromQuery(url.Values{}, from, today)
	require.NoError(t, err)
	assert.Equal(t, from, r.From)
	assert.Equal(t, today, r.To)

	r, err = DateRangeFromQuery(url.Values{"from": {"2024-05-08"}}, from, today)
	require.NoError(t, err)
	assert.Len(t, r.Days(), 3)
	assert.True(t, r.Contains(today))
	assert.False(t, r.Contains(today.AddDate(0, 0, 1)))

	_, err = DateRangeFromQuery(url.Values{"from": {"2024-06-01"}}, from, today)
	assert.Error(t, err)
	_, err = DateRangeFromQuery(url.Values{"to": {"10/05/2024"}}, from, today)
	assert.Error(t, err)
}

func TestCascades(t *testing.T) {
	assert.True(t, Location{}.Cascades(LevelDepartment))
	assert.False(t, Location{}.Cascades(LevelProvince))
	assert.True(t, Location{Department: "Cusco"}.Cascades(LevelProvince))
	assert.False(t, Location{Department: "Cusco"}.Cascades(LevelDistrict))
	assert.False(t, Location{Province: "Cusco"}.Cascades(LevelDistrict))
	assert.True(t, Location{Department: "Cusco", Province: "Cusco"}.Cascades(LevelDistrict))
}

func TestParseDateRangeRejectsHugeRanges(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	_, err := ParseDateRange("0001-01-01", "", today, today)
	assert.Error(t, err)

	r, err := ParseDateRange("1995-01-01", "2024-05-10", today, today)
	require.NoError(t, err)
	assert.Equal(t, 1995, r.From.Year())
}
