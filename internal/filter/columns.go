package filter

import "dsld/internal/query"

// Columns names the department, province and district columns of a dataset
// table, already quoted where needed.
type Columns struct {
	Department string
	Province   string
	District   string
}

// For returns the column holding level.
func (c Columns) For(level Level) string {
	switch level {
	case LevelProvince:
		return c.Province
	case LevelDistrict:
		return c.District
	default:
		return c.Department
	}
}

// Apply adds an equality predicate for each selected level of l.
func (c Columns) Apply(b *query.Builder, l Location) *query.Builder {
	l = l.Normalized()
	return b.Eq(c.Department, l.Department).
		Eq(c.Province, l.Province).
		Eq(c.District, l.District)
}

// Cascade builds the distinct-names query listing the options of level
// under parent. Callers check parent.Cascades(level) first.
func (c Columns) Cascade(table string, level Level, parent Location) *query.Builder {
	col := c.For(level)
	b := query.Select(table, "DISTINCT "+col).Where(col + " IS NOT NULL")
	switch level {
	case LevelProvince:
		b.Eq(c.Department, parent.Department)
	case LevelDistrict:
		b.Eq(c.Department, parent.Department).Eq(c.Province, parent.Province)
	}
	return b.OrderBy(col)
}
