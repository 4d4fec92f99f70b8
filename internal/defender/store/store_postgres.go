package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dsld/internal/defender/models"
	"dsld/internal/filter"
	"dsld/internal/platform/database"
	"dsld/internal/platform/tracing"
	"dsld/internal/query"
	"dsld/internal/views"
	"dsld/pkg/domain"
	pstrings "dsld/pkg/platform/strings"
)

const (
	dataset = "defenders"
	from    = "defensores d JOIN dna ON d.codigo_dna = dna.codigo " +
		"JOIN cargo c ON d.cargo = c.codigo " +
		"JOIN ocupacion o ON d.ocupacion = o.codigo"
)

var locationColumns = filter.Columns{Department: "dna.dpto", Province: "dna.prov", District: "dna.dist"}

// PostgresStore reads defensores joined with their office, role and
// occupation.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres-backed defenders store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func applyFilter(b *query.Builder, f models.Filter) *query.Builder {
	return locationColumns.Apply(b, f.Location).
		In("c.descripcion", f.Roles).
		In("o.ocupacion", f.Occupations)
}

// LocationNames lists the distinct office location names of level under
// parent.
func (s *PostgresStore) LocationNames(ctx context.Context, level filter.Level, parent filter.Location) (names []string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "location_names")
	defer func() { tracing.End(span, err) }()

	q, args := locationColumns.Cascade("dna", level, parent).SQL()
	names, err = database.ScanStrings(ctx, s.db, q, args)
	if err != nil {
		return nil, fmt.Errorf("list defender %s names: %w", level, err)
	}
	return names, nil
}

// Roles lists the role descriptions held by at least one defender.
func (s *PostgresStore) Roles(ctx context.Context) (roles []string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "roles")
	defer func() { tracing.End(span, err) }()

	q, args := query.Select("cargo c JOIN defensores d ON c.codigo = d.cargo", "DISTINCT c.descripcion").
		OrderBy("c.descripcion").
		SQL()
	roles, err = database.ScanStrings(ctx, s.db, q, args)
	if err != nil {
		return nil, fmt.Errorf("list defender roles: %w", err)
	}
	return roles, nil
}

// Occupations lists the occupations held by at least one defender.
func (s *PostgresStore) Occupations(ctx context.Context) (occupations []string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "occupations")
	defer func() { tracing.End(span, err) }()

	q, args := query.Select("ocupacion o JOIN defensores d ON o.codigo = d.ocupacion", "DISTINCT o.ocupacion").
		OrderBy("o.ocupacion").
		SQL()
	occupations, err = database.ScanStrings(ctx, s.db, q, args)
	if err != nil {
		return nil, fmt.Errorf("list defender occupations: %w", err)
	}
	return occupations, nil
}

// Summary counts defenders per grouping location, role and occupation.
func (s *PostgresStore) Summary(ctx context.Context, f models.Filter) (groups []views.Group, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "summary")
	defer func() { tracing.End(span, err) }()

	loc := query.Coalesce(locationColumns.For(f.Location.Grouping()))
	q, args := applyFilter(query.Select(from, loc, "c.descripcion", "o.ocupacion", "COUNT(*)"), f).
		GroupBy(loc, "c.descripcion", "o.ocupacion").
		SQL()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("summarize defenders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g views.Group
		var role, occupation string
		if err := rows.Scan(&g.Location, &role, &occupation, &g.Count); err != nil {
			return nil, fmt.Errorf("scan defender summary: %w", err)
		}
		g.Categories = []string{role, occupation}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate defender summary: %w", err)
	}
	return groups, nil
}

var defenderColumns = []string{
	query.Coalesce("d.codigo_dna"), query.Coalesce("d.nombres"), query.Coalesce("d.apellido"),
	"c.descripcion", query.Coalesce("d.dni"), "o.ocupacion",
}

func listQuery(f models.Filter) *query.Builder {
	return applyFilter(query.Select(from, defenderColumns...), f).
		OrderBy("d.apellido", "d.nombres")
}

// List returns one page of defenders, by surname then names, and the total
// matching f.
func (s *PostgresStore) List(ctx context.Context, f models.Filter, page query.Page) (out []models.Defender, total int, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "table")
	defer func() { tracing.End(span, err) }()

	b := listQuery(f)
	cq, cargs := b.CountSQL()
	if err := s.db.QueryRowContext(ctx, cq, cargs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count defenders: %w", err)
	}
	if total == 0 {
		return []models.Defender{}, 0, nil
	}

	q, args := b.Page(page).SQL()
	out, err = s.scanDefenders(ctx, q, args)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListAll returns up to limit defenders for download.
func (s *PostgresStore) ListAll(ctx context.Context, f models.Filter, limit int) (out []models.Defender, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "export")
	defer func() { tracing.End(span, err) }()

	q, args := listQuery(f).Limit(limit).SQL()
	return s.scanDefenders(ctx, q, args)
}

func (s *PostgresStore) scanDefenders(ctx context.Context, q string, args []any) ([]models.Defender, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list defenders: %w", err)
	}
	defer rows.Close()

	out := []models.Defender{}
	for rows.Next() {
		var d models.Defender
		if err := rows.Scan(&d.OfficeCode, &d.Names, &d.Surname, &d.Role, &d.DNI, &d.Occupation); err != nil {
			return nil, fmt.Errorf("scan defender: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate defenders: %w", err)
	}
	return out, nil
}

// AppointmentDates counts defenders per raw appointment date.
func (s *PostgresStore) AppointmentDates(ctx context.Context, f models.Filter) (dates []views.DateCount, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "timeline")
	defer func() { tracing.End(span, err) }()

	q, args := applyFilter(query.Select(from, "d.f_nombramiento", "COUNT(*)"), f).
		Where("d.f_nombramiento IS NOT NULL").
		GroupBy("d.f_nombramiento").
		SQL()
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointment dates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d views.DateCount
		if err := rows.Scan(&d.Raw, &d.Count); err != nil {
			return nil, fmt.Errorf("scan appointment date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointment dates: %w", err)
	}
	return dates, nil
}

// foldSQL is the SQL side of pstrings.Fold.
func foldSQL(col string) string {
	return "translate(lower(" + col + "), '" + pstrings.AccentedLetters + "', '" + pstrings.BaseLetters + "')"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches term against names, surname or the full name, ignoring
// case and accents. A numeric term also matches the DNI exactly.
func (s *PostgresStore) Search(ctx context.Context, term string, limit int) (out []models.Match, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "search")
	defer func() { tracing.End(span, err) }()

	pattern := "%" + likeEscaper.Replace(pstrings.Fold(term)) + "%"
	expr := "(" + foldSQL("d.nombres") + " LIKE ? OR " +
		foldSQL("d.apellido") + " LIKE ? OR " +
		foldSQL("d.nombres || ' ' || d.apellido") + " LIKE ?"
	args := []any{pattern, pattern, pattern}
	if domain.IsNumeric(term) {
		expr += " OR d.dni = ?"
		args = append(args, term)
	}
	expr += ")"

	columns := append(append([]string{}, defenderColumns...),
		query.Coalesce("dna.dpto"), query.Coalesce("dna.prov"), query.Coalesce("dna.dist"))
	q, qargs := query.Select(from, columns...).
		Where(expr, args...).
		OrderBy("d.apellido", "d.nombres").
		Limit(limit).
		SQL()

	rows, err := s.db.QueryContext(ctx, q, qargs...)
	if err != nil {
		return nil, fmt.Errorf("search defenders: %w", err)
	}
	defer rows.Close()

	out = []models.Match{}
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.OfficeCode, &m.Names, &m.Surname, &m.Role, &m.DNI, &m.Occupation,
			&m.Department, &m.Province, &m.District); err != nil {
			return nil, fmt.Errorf("scan defender match: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate defender matches: %w", err)
	}
	return out, nil
}
