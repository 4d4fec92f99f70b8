// Package service builds the offices (DNA) page views.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dsld/internal/chart"
	"dsld/internal/export"
	"dsld/internal/filter"
	locationModels "dsld/internal/location/models"
	"dsld/internal/office/models"
	"dsld/internal/platform/cache"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/internal/views"
	"dsld/pkg/domain"
	dErrors "dsld/pkg/domain-errors"
	"dsld/pkg/platform/sentinel"
)

const dataset = "offices"

// Store reads the dna table.
type Store interface {
	LocationNames(ctx context.Context, level filter.Level, parent filter.Location) ([]string, error)
	States(ctx context.Context) ([]string, error)
	Summary(ctx context.Context, f models.Filter) ([]views.Group, error)
	List(ctx context.Context, f models.Filter, page query.Page) ([]models.Summary, int, error)
	ListAll(ctx context.Context, f models.Filter, limit int) ([]models.Summary, error)
	ByCode(ctx context.Context, code string) (*models.Office, error)
}

type Service struct {
	store       Store
	cache       cache.Cache
	cacheTTL    time.Duration
	exportLimit int
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithExportLimit(n int) Option {
	return func(s *Service) {
		s.exportLimit = n
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("offices store is required")
	}
	svc := &Service{
		store:       store,
		exportLimit: 50000,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *Service) LocationOptions(ctx context.Context, level filter.Level, parent filter.Location) locationModels.OptionList {
	return views.LocationNameOptions(ctx, s.cacheOptions(), s.recorder(), level, parent, s.store.LocationNames)
}

// StateOptions lists the accreditation states.
func (s *Service) StateOptions(ctx context.Context) locationModels.OptionList {
	return views.NameOptions(ctx, s.cacheOptions(), s.recorder(), dataset+":states", "states", s.store.States)
}

// Summary builds the bar by location and the pie by accreditation state.
func (s *Service) Summary(ctx context.Context, f models.Filter) views.Summary {
	start := time.Now()
	groups, err := s.store.Summary(ctx, f)
	degraded := s.recorder().Observe(ctx, "summary", start, err)

	bar, pies := views.Fold(groups, 1)
	return views.Summary{
		Total: chart.Total(bar),
		Bar:   views.BarChart(models.Subject, f.Location, bar),
		Pies: []views.Pie{
			views.PieChart(models.PieState, chart.PieTitle(models.Subject, "Estado de Acreditación"), chart.NoDataCategory, pies[0]),
		},
		Degraded: degraded,
	}
}

func (s *Service) Table(ctx context.Context, f models.Filter, page query.Page) views.Table[models.Summary] {
	start := time.Now()
	rows, total, err := s.store.List(ctx, f, page)
	if s.recorder().Observe(ctx, "table", start, err) {
		return views.DegradedTable[models.Summary](page)
	}
	return views.NewTable(rows, total, page)
}

func (s *Service) Export(ctx context.Context, f models.Filter) (export.Table, error) {
	start := time.Now()
	rows, err := s.store.ListAll(ctx, f, s.exportLimit)
	if s.recorder().Observe(ctx, "export", start, err) {
		return export.Table{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "offices are temporarily unavailable")
	}
	t := export.Table{Name: models.ExportName, Columns: models.ExportColumns, Rows: make([][]any, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.ExportRow())
	}
	return t, nil
}

// Lookup returns the record of one office code. A malformed code is a
// validation error carrying the message shown to users.
func (s *Service) Lookup(ctx context.Context, raw string) (views.Lookup[models.Record], error) {
	code, err := domain.ParseOfficeCode(raw)
	if err != nil {
		s.metrics.IncrementLookup(dataset, "invalid")
		return views.Lookup[models.Record]{}, dErrors.Wrap(err, dErrors.CodeValidation, domain.OfficeCodeFormatMessage)
	}

	start := time.Now()
	office, err := s.store.ByCode(ctx, code.String())
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.ObserveQuery(dataset, "lookup", start)
		s.metrics.IncrementLookup(dataset, "empty")
		return views.NewLookup[models.Record](nil, models.NoResultsMessage), nil
	case s.recorder().Observe(ctx, "lookup", start, err):
		s.metrics.IncrementLookup(dataset, "error")
		result := views.NewLookup[models.Record](nil, models.NoResultsMessage)
		result.Degraded = true
		return result, nil
	}
	s.metrics.IncrementLookup(dataset, "found")
	return views.NewLookup([]models.Record{office.Record()}, models.NoResultsMessage), nil
}

func (s *Service) cacheOptions() cache.Options {
	return cache.Options{Cache: s.cache, TTL: s.cacheTTL, Metrics: s.metrics, Logger: s.logger}
}

func (s *Service) recorder() views.Recorder {
	return views.Recorder{Dataset: dataset, Logger: s.logger, Metrics: s.metrics}
}
