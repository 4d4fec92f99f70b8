package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dsld/internal/filter"
	"dsld/internal/office/models"
	"dsld/internal/platform/database"
	"dsld/internal/platform/tracing"
	"dsld/internal/query"
	"dsld/internal/views"
	"dsld/pkg/platform/sentinel"
)

const (
	dataset = "offices"
	table   = "dna"
)

var locationColumns = filter.Columns{Department: "dpto", Province: "prov", District: "dist"}

// PostgresStore reads the dna table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres-backed offices store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func applyFilter(b *query.Builder, f models.Filter) *query.Builder {
	return locationColumns.Apply(b, f.Location).In("estado_acreditacion", f.States)
}

// LocationNames lists the distinct location names of level under parent.
func (s *PostgresStore) LocationNames(ctx context.Context, level filter.Level, parent filter.Location) (names []string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "location_names")
	defer func() { tracing.End(span, err) }()

	q, args := locationColumns.Cascade(table, level, parent).SQL()
	names, err = database.ScanStrings(ctx, s.db, q, args)
	if err != nil {
		return nil, fmt.Errorf("list office %s names: %w", level, err)
	}
	return names, nil
}

// States lists the distinct accreditation states.
func (s *PostgresStore) States(ctx context.Context) (states []string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "states")
	defer func() { tracing.End(span, err) }()

	q, args := query.Select(table, "DISTINCT estado_acreditacion").
		Where("estado_acreditacion IS NOT NULL").
		OrderBy("estado_acreditacion").
		SQL()
	states, err = database.ScanStrings(ctx, s.db, q, args)
	if err != nil {
		return nil, fmt.Errorf("list accreditation states: %w", err)
	}
	return states, nil
}

// Summary counts offices per grouping location and accreditation state.
func (s *PostgresStore) Summary(ctx context.Context, f models.Filter) (groups []views.Group, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "summary")
	defer func() { tracing.End(span, err) }()

	loc := query.Coalesce(locationColumns.For(f.Location.Grouping()))
	state := query.Coalesce("estado_acreditacion")
	q, args := applyFilter(query.Select(table, loc, state, "COUNT(*)"), f).
		GroupBy(loc, state).
		SQL()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("summarize offices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g views.Group
		var st string
		if err := rows.Scan(&g.Location, &st, &g.Count); err != nil {
			return nil, fmt.Errorf("scan office summary: %w", err)
		}
		g.Categories = []string{st}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate office summary: %w", err)
	}
	return groups, nil
}

func summaryQuery(f models.Filter) *query.Builder {
	return applyFilter(query.Select(table,
		"codigo", query.Coalesce("modelo"), query.Coalesce("dpto"), query.Coalesce("prov"), query.Coalesce("dist"),
		query.Coalesce("estado_acreditacion"), query.Coalesce("estado_registro"),
	), f).OrderBy("dpto", "prov", "dist", "codigo")
}

// List returns one page of offices and the total matching f.
func (s *PostgresStore) List(ctx context.Context, f models.Filter, page query.Page) (out []models.Summary, total int, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "table")
	defer func() { tracing.End(span, err) }()

	b := summaryQuery(f)
	cq, cargs := b.CountSQL()
	if err := s.db.QueryRowContext(ctx, cq, cargs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count offices: %w", err)
	}
	if total == 0 {
		return []models.Summary{}, 0, nil
	}

	q, args := b.Page(page).SQL()
	out, err = s.scanSummaries(ctx, q, args)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListAll returns up to limit offices for download.
func (s *PostgresStore) ListAll(ctx context.Context, f models.Filter, limit int) (out []models.Summary, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "export")
	defer func() { tracing.End(span, err) }()

	q, args := summaryQuery(f).Limit(limit).SQL()
	return s.scanSummaries(ctx, q, args)
}

func (s *PostgresStore) scanSummaries(ctx context.Context, q string, args []any) ([]models.Summary, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	defer rows.Close()

	out := []models.Summary{}
	for rows.Next() {
		var o models.Summary
		if err := rows.Scan(&o.Code, &o.Model, &o.Department, &o.Province, &o.District,
			&o.AccreditationState, &o.RegistrationState); err != nil {
			return nil, fmt.Errorf("scan office: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offices: %w", err)
	}
	return out, nil
}

const officeByCode = `SELECT codigo,
	COALESCE(modelo, ''), COALESCE(dpto, ''), COALESCE(prov, ''), COALESCE(dist, ''),
	COALESCE(estado_acreditacion, ''), COALESCE(f_acreditacion, ''), COALESCE("resolución_acreditación", ''),
	COALESCE(direccion, ''), COALESCE(fono1, ''), COALESCE(email, ''), COALESCE(horario, ''),
	COALESCE(f_inicio, ''), COALESCE(doc_creacion, ''), COALESCE(f_rof, ''), COALESCE(rof, ''),
	COALESCE(estado_registro, ''), COALESCE(f_registro, ''), COALESCE("resolución_inscripción", ''),
	def_f, def_m, promdef_f, promdef_m, otros_f, otros_m,
	COALESCE("f_supervisión", ''), COALESCE(observaciones, ''),
	COALESCE(curso, ''), COALESCE(f_curso, ''), COALESCE(f_cconna, ''), COALESCE(fortalecida, '')
FROM dna WHERE codigo = $1`

// ByCode returns the full record of one office.
func (s *PostgresStore) ByCode(ctx context.Context, code string) (o *models.Office, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "lookup")
	defer func() { tracing.End(span, err) }()

	var rec models.Office
	var defF, defM, promF, promM, othF, othM sql.NullInt64
	err = s.db.QueryRowContext(ctx, officeByCode, code).Scan(
		&rec.Code, &rec.Model, &rec.Department, &rec.Province, &rec.District,
		&rec.AccreditationState, &rec.AccreditationDate, &rec.AccreditationResolution,
		&rec.Address, &rec.Phone, &rec.Email, &rec.OpeningHours,
		&rec.CreationDate, &rec.CreationResolution, &rec.ROFDate, &rec.ROFResolution,
		&rec.RegistrationState, &rec.RegistrationDate, &rec.RegistrationResolution,
		&defF, &defM, &promF, &promM, &othF, &othM,
		&rec.SupervisionDate, &rec.SupervisionNotes,
		&rec.LastCourse, &rec.LastCourseDate, &rec.CommitteeDate, &rec.Strengthened,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find office by code: %w", err)
	}
	rec.DefendersFemale = database.IntPtr(defF)
	rec.DefendersMale = database.IntPtr(defM)
	rec.PromotersFemale = database.IntPtr(promF)
	rec.PromotersMale = database.IntPtr(promM)
	rec.OthersFemale = database.IntPtr(othF)
	rec.OthersMale = database.IntPtr(othM)
	return &rec, nil
}
