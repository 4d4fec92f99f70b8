package store

import (
	"context"
	"database/sql"
	"fmt"

	"dsld/internal/committee/models"
	"dsld/internal/filter"
	"dsld/internal/platform/database"
	"dsld/internal/platform/tracing"
	"dsld/internal/query"
)

const (
	dataset = "committees"
	table   = "cconna"
)

var (
	colUbigeo    = query.Quote("Ubigeo")
	colName      = query.Quote("Nombre del CCONNA")
	colType      = "TRIM(" + query.Quote("Tipo de CCONNA ") + ")"
	colOrdinance = query.Quote("Fecha de la Ordenanza")
	colStart     = query.Quote("Fecha de inicio del CCONNA")
	colEnd       = query.Quote("Fecha de termino del CCONNA")
)

var locationColumns = filter.Columns{
	Department: query.Quote("Región"),
	Province:   query.Quote("Provincia"),
	District:   query.Quote("Distrito"),
}

var committeeColumns = []string{
	query.Coalesce(colUbigeo), query.Coalesce(colName), query.Coalesce(colType),
	query.Coalesce(locationColumns.Department), query.Coalesce(locationColumns.Province), query.Coalesce(locationColumns.District),
	query.Coalesce(colOrdinance), query.Coalesce(colStart), query.Coalesce(colEnd),
	colOrdinance + " IS NOT NULL",
}

// PostgresStore reads the cconna table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres-backed committees store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Types lists the trimmed committee types among allowed present within the
// named location.
func (s *PostgresStore) Types(ctx context.Context, loc filter.Location, allowed []string) (types []string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "types")
	defer func() { tracing.End(span, err) }()

	q, args := locationColumns.Apply(query.Select(table, "DISTINCT "+colType), loc).
		In(colType, allowed).
		OrderBy("1").
		SQL()
	types, err = database.ScanStrings(ctx, s.db, q, args)
	if err != nil {
		return nil, fmt.Errorf("list committee types: %w", err)
	}
	return types, nil
}

// List returns up to limit committees matching c, ordered by location with
// wider councils first, then name. Validity is left to the caller.
func (s *PostgresStore) List(ctx context.Context, c models.Criteria, limit int) (out []models.Committee, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "list")
	defer func() { tracing.End(span, err) }()

	b := locationColumns.Apply(query.Select(table, committeeColumns...), c.Location).
		In(colType, c.Types)
	if c.Created != nil {
		if *c.Created {
			b.Where(colOrdinance + " IS NOT NULL")
		} else {
			b.Where(colOrdinance + " IS NULL")
		}
	}
	q, args := b.OrderBy(locationColumns.Department, locationColumns.Province+" NULLS FIRST",
		locationColumns.District+" NULLS FIRST", colName).
		Limit(limit).
		SQL()
	return s.scanCommittees(ctx, q, args)
}

// ByUbigeo returns the committees registered under one ubigeo code.
func (s *PostgresStore) ByUbigeo(ctx context.Context, code string) (out []models.Committee, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "lookup")
	defer func() { tracing.End(span, err) }()

	q, args := query.Select(table, committeeColumns...).
		Eq(colUbigeo, code).
		OrderBy(colName).
		SQL()
	return s.scanCommittees(ctx, q, args)
}

func (s *PostgresStore) scanCommittees(ctx context.Context, q string, args []any) ([]models.Committee, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list committees: %w", err)
	}
	defer rows.Close()

	out := []models.Committee{}
	for rows.Next() {
		var c models.Committee
		var created bool
		if err := rows.Scan(&c.Ubigeo, &c.Name, &c.Type, &c.Region, &c.Province, &c.District,
			&c.OrdinanceDate, &c.StartDate, &c.EndDate, &created); err != nil {
			return nil, fmt.Errorf("scan committee: %w", err)
		}
		c.Creation = models.CreationLabel(created)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate committees: %w", err)
	}
	return out, nil
}
