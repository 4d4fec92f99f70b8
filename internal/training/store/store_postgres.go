package store

import (
	"context"
	"database/sql"
	"fmt"

	"dsld/internal/filter"
	"dsld/internal/platform/database"
	"dsld/internal/platform/tracing"
	"dsld/internal/query"
	"dsld/internal/training/models"
	"dsld/internal/views"
)

const (
	dataset = "trainings"
	table   = "capacitaciones"
)

var (
	colYear      = query.Quote("AÑO")
	colCourse    = query.Quote("CURSO")
	colVenue     = query.Quote("SEDE DE CAPACITACIÓN")
	colStart     = query.Quote("FECHA INICIO CURSO")
	colEnd       = query.Quote("FECHA CULMINA CURSO")
	colGrade     = query.Quote("NOTA OBTENIDA")
	colCondition = query.Quote("CONDICIÓN")
	colDNI       = query.Quote("DNI")

	locationColumns = filter.Columns{
		Department: query.Quote("DEPARTAMENTO"),
		Province:   query.Quote("PROVINCIA"),
		District:   query.Quote("DISTRITO"),
	}

	sessionColumns = []string{
		colYear, colCourse, colVenue, colStart, colEnd,
		locationColumns.Department, locationColumns.Province, locationColumns.District,
	}
)

// PostgresStore reads the capacitaciones table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres-backed trainings store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func applyFilter(b *query.Builder, f models.Filter) *query.Builder {
	return locationColumns.Apply(b, f.Location).In(colCourse, f.Courses)
}

// LocationNames lists the distinct location names of level under parent.
func (s *PostgresStore) LocationNames(ctx context.Context, level filter.Level, parent filter.Location) (names []string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "location_names")
	defer func() { tracing.End(span, err) }()

	q, args := locationColumns.Cascade(table, level, parent).SQL()
	names, err = database.ScanStrings(ctx, s.db, q, args)
	if err != nil {
		return nil, fmt.Errorf("list training %s names: %w", level, err)
	}
	return names, nil
}

// Courses lists the distinct course names.
func (s *PostgresStore) Courses(ctx context.Context) (courses []string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "courses")
	defer func() { tracing.End(span, err) }()

	q, args := query.Select(table, "DISTINCT "+colCourse).
		Where(colCourse + " IS NOT NULL").
		OrderBy(colCourse).
		SQL()
	courses, err = database.ScanStrings(ctx, s.db, q, args)
	if err != nil {
		return nil, fmt.Errorf("list course options: %w", err)
	}
	return courses, nil
}

// Summary counts trainings per grouping location and course.
func (s *PostgresStore) Summary(ctx context.Context, f models.Filter) (groups []views.Group, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "summary")
	defer func() { tracing.End(span, err) }()

	loc := query.Coalesce(locationColumns.For(f.Location.Grouping()))
	course := query.Coalesce(colCourse)
	q, args := applyFilter(query.Select(table, loc, course, "COUNT(*)"), f).
		GroupBy(loc, course).
		SQL()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("summarize trainings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g views.Group
		var c string
		if err := rows.Scan(&g.Location, &c, &g.Count); err != nil {
			return nil, fmt.Errorf("scan training summary: %w", err)
		}
		g.Categories = []string{c}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training summary: %w", err)
	}
	return groups, nil
}

func sessionQuery(f models.Filter) *query.Builder {
	cols := make([]string, 0, len(sessionColumns)+1)
	cols = append(cols, colYear)
	for _, c := range sessionColumns[1:] {
		cols = append(cols, query.Coalesce(c))
	}
	cols = append(cols, "COUNT(*)")
	return applyFilter(query.Select(table, cols...), f).
		GroupBy(sessionColumns...).
		OrderBy(colYear+" DESC NULLS LAST", colCourse, locationColumns.Department, locationColumns.Province, locationColumns.District, colStart)
}

// Sessions returns one page of course editions and the total number of them.
func (s *PostgresStore) Sessions(ctx context.Context, f models.Filter, page query.Page) (sessions []models.Session, total int, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "table")
	defer func() { tracing.End(span, err) }()

	b := sessionQuery(f)
	cq, cargs := b.CountSQL()
	if err := s.db.QueryRowContext(ctx, cq, cargs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count training sessions: %w", err)
	}
	if total == 0 {
		return []models.Session{}, 0, nil
	}

	q, args := b.Page(page).SQL()
	sessions, err = s.scanSessions(ctx, q, args)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// ExportSessions returns up to limit course editions for download.
func (s *PostgresStore) ExportSessions(ctx context.Context, f models.Filter, limit int) (sessions []models.Session, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "export")
	defer func() { tracing.End(span, err) }()

	q, args := sessionQuery(f).Limit(limit).SQL()
	return s.scanSessions(ctx, q, args)
}

func (s *PostgresStore) scanSessions(ctx context.Context, q string, args []any) ([]models.Session, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	defer rows.Close()

	out := []models.Session{}
	for rows.Next() {
		var r models.Session
		var year sql.NullInt64
		if err := rows.Scan(&year, &r.Course, &r.Venue, &r.StartDate, &r.EndDate,
			&r.Department, &r.Province, &r.District, &r.Participants); err != nil {
			return nil, fmt.Errorf("scan training session: %w", err)
		}
		r.Year = database.IntPtr(year)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training sessions: %w", err)
	}
	return out, nil
}

// StartDates counts trainings per raw start date.
func (s *PostgresStore) StartDates(ctx context.Context, f models.Filter) (dates []views.DateCount, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "timeline")
	defer func() { tracing.End(span, err) }()

	q, args := applyFilter(query.Select(table, colStart, "COUNT(*)"), f).
		Where(colStart + " IS NOT NULL").
		GroupBy(colStart).
		SQL()
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list training start dates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d views.DateCount
		if err := rows.Scan(&d.Raw, &d.Count); err != nil {
			return nil, fmt.Errorf("scan training start date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training start dates: %w", err)
	}
	return dates, nil
}

// ByDNI returns every training of one person, newest first.
func (s *PostgresStore) ByDNI(ctx context.Context, dni string) (out []models.Participation, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "lookup")
	defer func() { tracing.End(span, err) }()

	q, args := query.Select(table,
		colYear, query.Coalesce(colCourse),
		query.Coalesce(locationColumns.Department), query.Coalesce(locationColumns.Province), query.Coalesce(locationColumns.District),
		query.Coalesce(colVenue), query.Coalesce(colStart), query.Coalesce(colEnd), query.Coalesce(colGrade), query.Coalesce(colCondition),
	).
		Eq(colDNI, dni).
		OrderBy(colYear+" DESC NULLS LAST", colStart+" DESC").
		SQL()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("find trainings by dni: %w", err)
	}
	defer rows.Close()

	out = []models.Participation{}
	for rows.Next() {
		var p models.Participation
		var year sql.NullInt64
		if err := rows.Scan(&year, &p.Course, &p.Department, &p.Province, &p.District,
			&p.Venue, &p.StartDate, &p.EndDate, &p.Grade, &p.Condition); err != nil {
			return nil, fmt.Errorf("scan training: %w", err)
		}
		p.Year = database.IntPtr(year)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trainings: %w", err)
	}
	return out, nil
}
