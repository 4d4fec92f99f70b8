// Package service builds the trainings page views.
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
	"dsld/internal/platform/cache"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/internal/training/models"
	"dsld/internal/validity"
	"dsld/internal/views"
	"dsld/pkg/domain"
	dErrors "dsld/pkg/domain-errors"
)

const dataset = "trainings"

// Store reads the capacitaciones table.
type Store interface {
	LocationNames(ctx context.Context, level filter.Level, parent filter.Location) ([]string, error)
	Courses(ctx context.Context) ([]string, error)
	Summary(ctx context.Context, f models.Filter) ([]views.Group, error)
	Sessions(ctx context.Context, f models.Filter, page query.Page) ([]models.Session, int, error)
	ExportSessions(ctx context.Context, f models.Filter, limit int) ([]models.Session, error)
	StartDates(ctx context.Context, f models.Filter) ([]views.DateCount, error)
	ByDNI(ctx context.Context, dni string) ([]models.Participation, error)
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

// WithExportLimit caps the rows of one export.
func WithExportLimit(n int) Option {
	return func(s *Service) {
		s.exportLimit = n
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("trainings store is required")
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

// LocationOptions lists the location names of level under parent.
func (s *Service) LocationOptions(ctx context.Context, level filter.Level, parent filter.Location) locationModels.OptionList {
	return views.LocationNameOptions(ctx, s.cacheOptions(), s.recorder(), level, parent, s.store.LocationNames)
}

// CourseOptions lists every course name.
func (s *Service) CourseOptions(ctx context.Context) locationModels.OptionList {
	return views.NameOptions(ctx, s.cacheOptions(), s.recorder(), dataset+":courses", "courses", s.store.Courses)
}

// Summary builds the bar by location and the pie by course.
func (s *Service) Summary(ctx context.Context, f models.Filter) views.Summary {
	start := time.Now()
	groups, err := s.store.Summary(ctx, f)
	degraded := s.recorder().Observe(ctx, "summary", start, err)

	bar, pies := views.Fold(groups, 1)
	return views.Summary{
		Total: chart.Total(bar),
		Bar:   views.BarChart(models.Subject, f.Location, bar),
		Pies: []views.Pie{
			views.PieChart(models.PieCourse, chart.PieTitle(models.Subject, "Curso"), chart.NoDataCategory, pies[0]),
		},
		Degraded: degraded,
	}
}

// Table returns one page of course editions.
func (s *Service) Table(ctx context.Context, f models.Filter, page query.Page) views.Table[models.Session] {
	start := time.Now()
	rows, total, err := s.store.Sessions(ctx, f, page)
	if s.recorder().Observe(ctx, "table", start, err) {
		return views.DegradedTable[models.Session](page)
	}
	return views.NewTable(rows, total, page)
}

// Export returns every course edition matching f, up to the export cap.
func (s *Service) Export(ctx context.Context, f models.Filter) (export.Table, error) {
	start := time.Now()
	rows, err := s.store.ExportSessions(ctx, f, s.exportLimit)
	if s.recorder().Observe(ctx, "export", start, err) {
		return export.Table{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "trainings are temporarily unavailable")
	}
	t := export.Table{Name: models.ExportName, Columns: models.ExportColumns, Rows: make([][]any, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.ExportRow())
	}
	return t, nil
}

// Timeline returns cumulative participants per day between from and to
// (YYYY-MM-DD, optional).
func (s *Service) Timeline(ctx context.Context, f models.Filter, from, to string) (views.Timeline, error) {
	r, err := filter.ParseDateRange(from, to, views.DefaultTimelineStart, s.clock.Today(ctx))
	if err != nil {
		return views.Timeline{}, err
	}

	start := time.Now()
	dates, err := s.store.StartDates(ctx, f)
	if s.recorder().Observe(ctx, "timeline", start, err) {
		return views.DegradedTimeline(r), nil
	}
	return views.CumulativeTimeline(models.TimelineTitle, models.TimelineYLabel, r, views.EventsByDay(dates)), nil
}

// Lookup returns the trainings of one DNI. A malformed DNI is a validation
// error carrying the message shown to users.
func (s *Service) Lookup(ctx context.Context, raw string) (views.Lookup[models.Participation], error) {
	dni, err := domain.ParseDNI(raw)
	if err != nil {
		s.metrics.IncrementLookup(dataset, "invalid")
		return views.Lookup[models.Participation]{}, dErrors.Wrap(err, dErrors.CodeValidation, domain.DNIFormatMessage)
	}

	start := time.Now()
	rows, err := s.store.ByDNI(ctx, dni.String())
	if s.recorder().Observe(ctx, "lookup", start, err) {
		s.metrics.IncrementLookup(dataset, "error")
		result := views.NewLookup[models.Participation](nil, models.NoResultsMessage)
		result.Degraded = true
		return result, nil
	}
	result := views.NewLookup(rows, models.NoResultsMessage)
	s.metrics.IncrementLookup(dataset, lookupOutcome(len(rows)))
	return result, nil
}

func lookupOutcome(n int) string {
	if n == 0 {
		return "empty"
	}
	return "found"
}

func (s *Service) cacheOptions() cache.Options {
	return cache.Options{Cache: s.cache, TTL: s.cacheTTL, Metrics: s.metrics, Logger: s.logger}
}

func (s *Service) recorder() views.Recorder {
	return views.Recorder{Dataset: dataset, Logger: s.logger, Metrics: s.metrics}
}
