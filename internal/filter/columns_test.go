package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dsld/internal/query"
)

var testColumns = Columns{Department: "dpto", Province: "prov", District: "dist"}

func TestColumnsApplyNormalizes(t *testing.T) {
	b := testColumns.Apply(query.Select("dna", "codigo"), Location{Department: "Cusco", District: "Ccorca"})
	sql, args := b.SQL()
	assert.Equal(t, "SELECT codigo FROM dna WHERE dpto = $1", sql)
	assert.Equal(t, []any{"Cusco"}, args)
}

func TestColumnsCascade(t *testing.T) {
	sql, args := testColumns.Cascade("dna", LevelDistrict, Location{Department: "Cusco", Province: "Acomayo"}).SQL()
	assert.Equal(t, "SELECT DISTINCT dist FROM dna WHERE dist IS NOT NULL AND dpto = $1 AND prov = $2 ORDER BY dist", sql)
	assert.Equal(t, []any{"Cusco", "Acomayo"}, args)

	sql, args = testColumns.Cascade("dna", LevelDepartment, Location{}).SQL()
	assert.Equal(t, "SELECT DISTINCT dpto FROM dna WHERE dpto IS NOT NULL ORDER BY dpto", sql)
	assert.Empty(t, args)
}
