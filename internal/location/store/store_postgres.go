package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dsld/internal/location/models"
	"dsld/internal/platform/tracing"
	"dsld/internal/query"
	"dsld/pkg/platform/sentinel"
)

const dataset = "locations"

// PostgresStore reads the ubigeo table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres-backed location store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// List returns the ubigeo rows selected by scope, ordered by name.
func (s *PostgresStore) List(ctx context.Context, scope models.Scope) (out []models.Option, err error) {
	if scope.IsEmpty() {
		return []models.Option{}, nil
	}
	ctx, span := tracing.StartQuery(ctx, dataset, "list")
	defer func() { tracing.End(span, err) }()

	b := query.Select("ubigeo", "nombre", "ubigeo").
		In("ubigeo", scope.Codes).
		NotIn("ubigeo", scope.Exclude).
		OrderBy("nombre")
	if scope.Pattern != "" {
		b.Like("ubigeo", scope.Pattern)
	}
	q, args := b.SQL()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	out = []models.Option{}
	for rows.Next() {
		var o models.Option
		if err := rows.Scan(&o.Label, &o.Value); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return out, nil
}

// Name returns the name of one ubigeo code.
func (s *PostgresStore) Name(ctx context.Context, code string) (name string, err error) {
	ctx, span := tracing.StartQuery(ctx, dataset, "name")
	defer func() { tracing.End(span, err) }()

	err = s.db.QueryRowContext(ctx, `SELECT nombre FROM ubigeo WHERE ubigeo = $1`, code).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("find location name: %w", err)
	}
	return name, nil
}
