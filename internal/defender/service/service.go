// Package service builds the defenders (defensores) page views.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dsld/internal/chart"
	"dsld/internal/defender/models"
	"dsld/internal/export"
	"dsld/internal/filter"
	locationModels "dsld/internal/location/models"
	"dsld/internal/platform/cache"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/internal/validity"
	"dsld/internal/views"
	dErrors "dsld/pkg/domain-errors"
	pstrings "dsld/pkg/platform/strings"
)

const dataset = "defenders"

// Store reads defenders with their office, role and occupation.
type Store interface {
	LocationNames(ctx context.Context, level filter.Level, parent filter.Location) ([]string, error)
	Roles(ctx context.Context) ([]string, error)
	Occupations(ctx context.Context) ([]string, error)
	Summary(ctx context.Context, f models.Filter) ([]views.Group, error)
	List(ctx context.Context, f models.Filter, page query.Page) ([]models.Defender, int, error)
	ListAll(ctx context.Context, f models.Filter, limit int) ([]models.Defender, error)
	AppointmentDates(ctx context.Context, f models.Filter) ([]views.DateCount, error)
	Search(ctx context.Context, term string, limit int) ([]models.Match, error)
}

type Service struct {
	store       Store
	clock       validity.Clock
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

// WithClock sets the clock that decides "today" for timelines.
func WithClock(c validity.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

func WithExportLimit(n int) Option {
	return func(s *Service) {
		s.exportLimit = n
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("defenders store is required")
	}
	svc := &Service{
		store:       store,
		clock:       validity.NewClock(time.UTC),
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

// RoleOptions lists the held roles and preselects Responsable and Defensor
// when present.
func (s *Service) RoleOptions(ctx context.Context) models.RoleOptionList {
	list := views.NameOptions(ctx, s.cacheOptions(), s.recorder(), dataset+":roles", "roles", s.store.Roles)
	return models.RoleOptionList{
		Options:  list.Options,
		Default:  models.DefaultSelection(list.Options),
		Degraded: list.Degraded,
	}
}

func (s *Service) OccupationOptions(ctx context.Context) locationModels.OptionList {
	return views.NameOptions(ctx, s.cacheOptions(), s.recorder(), dataset+":occupations", "occupations", s.store.Occupations)
}

// Summary builds the bar by location and the pies by role and occupation.
func (s *Service) Summary(ctx context.Context, f models.Filter) views.Summary {
	start := time.Now()
	groups, err := s.store.Summary(ctx, f)
	degraded := s.recorder().Observe(ctx, "summary", start, err)

	bar, pies := views.Fold(groups, 2)
	return views.Summary{
		Total: chart.Total(bar),
		Bar:   views.BarChart(models.Subject, f.Location, bar),
		Pies: []views.Pie{
			views.PieChart(models.PieRole, chart.PieTitle(models.Subject, "Cargo"), chart.NoDataCategory, pies[0]),
			views.PieChart(models.PieOccupation, chart.PieTitle(models.Subject, "Ocupación"), chart.NoDataCategory, pies[1]),
		},
		Degraded: degraded,
	}
}

func (s *Service) Table(ctx context.Context, f models.Filter, page query.Page) views.Table[models.Defender] {
	start := time.Now()
	rows, total, err := s.store.List(ctx, f, page)
	if s.recorder().Observe(ctx, "table", start, err) {
		return views.DegradedTable[models.Defender](page)
	}
	return views.NewTable(rows, total, page)
}

func (s *Service) Export(ctx context.Context, f models.Filter) (export.Table, error) {
	start := time.Now()
	rows, err := s.store.ListAll(ctx, f, s.exportLimit)
	if s.recorder().Observe(ctx, "export", start, err) {
		return export.Table{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "defenders are temporarily unavailable")
	}
	t := export.Table{Name: models.ExportName, Columns: models.ExportColumns, Rows: make([][]any, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.ExportRow())
	}
	return t, nil
}

// Timeline returns cumulative appointments per day between from and to
// (YYYY-MM-DD, optional).
func (s *Service) Timeline(ctx context.Context, f models.Filter, from, to string) (views.Timeline, error) {
	r, err := filter.ParseDateRange(from, to, views.DefaultTimelineStart, s.clock.Today(ctx))
	if err != nil {
		return views.Timeline{}, err
	}

	start := time.Now()
	dates, err := s.store.AppointmentDates(ctx, f)
	if s.recorder().Observe(ctx, "timeline", start, err) {
		return views.DegradedTimeline(r), nil
	}
	return views.CumulativeTimeline(models.TimelineTitle, models.TimelineYLabel, r, views.EventsByDay(dates)), nil
}

// Search finds up to ten defenders by name, surname or DNI. A blank term is
// a validation error.
func (s *Service) Search(ctx context.Context, term string) (views.Lookup[models.Match], error) {
	term = pstrings.CollapseSpaces(term)
	if term == "" {
		s.metrics.IncrementLookup(dataset, "invalid")
		return views.Lookup[models.Match]{}, dErrors.New(dErrors.CodeValidation, models.EmptySearchMessage)
	}

	start := time.Now()
	rows, err := s.store.Search(ctx, term, models.SearchLimit)
	if s.recorder().Observe(ctx, "search", start, err) {
		s.metrics.IncrementLookup(dataset, "error")
		result := views.NewLookup[models.Match](nil, models.NoResultsMessage)
		result.Degraded = true
		return result, nil
	}
	if len(rows) == 0 {
		s.metrics.IncrementLookup(dataset, "empty")
	} else {
		s.metrics.IncrementLookup(dataset, "found")
	}
	return views.NewLookup(rows, models.NoResultsMessage), nil
}

func (s *Service) cacheOptions() cache.Options {
	return cache.Options{Cache: s.cache, TTL: s.cacheTTL, Metrics: s.metrics, Logger: s.logger}
}

func (s *Service) recorder() views.Recorder {
	return views.Recorder{Dataset: dataset, Logger: s.logger, Metrics: s.metrics}
}
