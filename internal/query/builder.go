// Package query builds parameter-bound SELECT statements for the dataset
// stores. Optional predicates are added only when their value is set, and
// every value travels as a positional parameter.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// Builder accumulates a SELECT statement. The zero value is not usable; call
// Select.
type Builder struct {
	columns []string
	from    string
	where   []string
	groupBy []string
	orderBy []string
	limit   int
	offset  int
	args    []any
}

// Select starts a statement over from with the given column expressions.
func Select(from string, columns ...string) *Builder {
	return &Builder{from: from, columns: columns}
}

// Eq adds "col = $n" when value is non-empty.
func (b *Builder) Eq(col, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Where(col+" = ?", value)
}

// In adds "col = ANY($n)" when values is non-empty. The slice is bound as a
// single array parameter.
func (b *Builder) In(col string, values []string) *Builder {
	if len(values) == 0 {
		return b
	}
	return b.Where(col+" = ANY(?)", pq.Array(values))
}

// NotIn adds "NOT (col = ANY($n))" when values is non-empty.
func (b *Builder) NotIn(col string, values []string) *Builder {
	if len(values) == 0 {
		return b
	}
	return b.Where("NOT ("+col+" = ANY(?))", pq.Array(values))
}

// Like adds "col LIKE $n".
func (b *Builder) Like(col, pattern string) *Builder {
	return b.Where(col+" LIKE ?", pattern)
}

// Where adds a raw predicate. Each "?" in expr is replaced by the next
// positional placeholder and bound to the matching arg.
func (b *Builder) Where(expr string, args ...any) *Builder {
	if strings.Count(expr, "?") != len(args) {
		panic(fmt.Sprintf("query: %d placeholders for %d args in %q", strings.Count(expr, "?"), len(args), expr))
	}
	var sb strings.Builder
	argi := 0
	for _, r := range expr {
		if r == '?' {
			b.args = append(b.args, args[argi])
			argi++
			sb.WriteString("$" + strconv.Itoa(len(b.args)))
			continue
		}
		sb.WriteRune(r)
	}
	b.where = append(b.where, sb.String())
	return b
}

// GroupBy appends grouping expressions.
func (b *Builder) GroupBy(cols ...string) *Builder {
	b.groupBy = append(b.groupBy, cols...)
	return b
}

// OrderBy appends ordering expressions.
func (b *Builder) OrderBy(cols ...string) *Builder {
	b.orderBy = append(b.orderBy, cols...)
	return b
}

// Limit caps the row count. Zero means no limit.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Page applies LIMIT/OFFSET for p.
func (b *Builder) Page(p Page) *Builder {
	p = p.Normalize(DefaultPageSize, MaxPageSize)
	b.limit = p.Size
	b.offset = p.Offset()
	return b
}

// SQL renders the statement and its arguments.
func (b *Builder) SQL() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.from)
	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	if len(b.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}
	args := append([]any(nil), b.args...)
	if b.limit > 0 {
		args = append(args, b.limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	if b.offset > 0 {
		args = append(args, b.offset)
		sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
	}
	return sb.String(), args
}

// CountSQL renders "SELECT COUNT(*)" over the same FROM/WHERE, ignoring
// grouping, ordering and paging. Grouped statements are counted as a subquery.
func (b *Builder) CountSQL() (string, []any) {
	if len(b.groupBy) > 0 {
		inner := &Builder{
			columns: []string{"1"},
			from:    b.from,
			where:   b.where,
			groupBy: b.groupBy,
			args:    b.args,
		}
		sql, args := inner.SQL()
		return "SELECT COUNT(*) FROM (" + sql + ") AS grouped", args
	}
	counter := &Builder{
		columns: []string{"COUNT(*)"},
		from:    b.from,
		where:   b.where,
		args:    b.args,
	}
	return counter.SQL()
}

// Quote returns a double-quoted identifier. Source tables use column names
// with spaces, accents and even trailing blanks.
func Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Coalesce renders a text column with NULL read as the empty string.
func Coalesce(col string) string {
	return "COALESCE(" + col + ", '')"
}
