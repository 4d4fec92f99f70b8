// Package service builds the CCONNA (committees) page views. Location
// filters arrive as ubigeo codes and are resolved to the names stored in
// the cconna table; vigencia is derived per request.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dsld/internal/chart"
	"dsld/internal/committee/models"
	"dsld/internal/export"
	"dsld/internal/filter"
	locationModels "dsld/internal/location/models"
	"dsld/internal/platform/cache"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/internal/validity"
	"dsld/internal/views"
	"dsld/pkg/domain"
	dErrors "dsld/pkg/domain-errors"
)

const dataset = "committees"

// Store reads the cconna table.
type Store interface {
	Types(ctx context.Context, loc filter.Location, allowed []string) ([]string, error)
	List(ctx context.Context, c models.Criteria, limit int) ([]models.Committee, error)
	ByUbigeo(ctx context.Context, code string) ([]models.Committee, error)
}

// LocationNamer resolves ubigeo codes to location names.
type LocationNamer interface {
	Names(ctx context.Context, codes filter.Location) (filter.Location, error)
}

type Service struct {
	store       Store
	locations   LocationNamer
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

// WithClock sets the clock that decides "today" for vigencia and history.
func WithClock(c validity.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithExportLimit caps the committees loaded for one view or export.
func WithExportLimit(n int) Option {
	return func(s *Service) {
		s.exportLimit = n
	}
}

func New(store Store, locations LocationNamer, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("committees store is required")
	}
	if locations == nil {
		return nil, errors.New("location namer is required")
	}
	svc := &Service{
		store:       store,
		locations:   locations,
		clock:       validity.NewClock(time.UTC),
		exportLimit: 50000,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// TypeOptions lists the committee types present under the selected codes,
// restricted to those meaningful at the selection depth.
func (s *Service) TypeOptions(ctx context.Context, codes filter.Location) locationModels.OptionList {
	codes = codes.Normalized()
	key := cache.Key(dataset, "types", codes.Department, codes.Province, codes.District)
	return views.NameOptions(ctx, s.cacheOptions(), s.recorder(), key, "types", func(ctx context.Context) ([]string, error) {
		names, err := s.locations.Names(ctx, codes)
		if err != nil {
			return nil, err
		}
		return s.store.Types(ctx, names, models.TypesFor(codes.Depth()))
	})
}

// StatusOptions returns the fixed status dropdown choices.
func (s *Service) StatusOptions() models.StatusOptions {
	return models.DefaultStatusOptions()
}

// StatusState applies the status dropdown rules.
func (s *Service) StatusState(trigger, registration, creation string) models.StatusState {
	return models.NextStatusState(trigger, registration, creation)
}

// Summary builds the bar by location and the pies by type, creation and
// vigencia.
func (s *Service) Summary(ctx context.Context, f models.Filter) views.Summary {
	names, rows, degraded := s.load(ctx, f, "summary")

	level := names.Grouping()
	groups := make([]views.Group, 0, len(rows))
	for _, r := range rows {
		groups = append(groups, views.Group{
			Location:   r.LocationAt(level),
			Categories: []string{r.Type, r.Creation, r.Validity.String()},
			Count:      1,
		})
	}
	bar, pies := views.Fold(groups, 3)
	return views.Summary{
		Total: chart.Total(bar),
		Bar:   views.BarChart(models.Subject, names, bar),
		Pies: []views.Pie{
			views.PieChart(models.PieType, models.TypeTitle, chart.NoDataType, pies[0]),
			views.PieChart(models.PieCreation, models.CreationTitle, chart.NoDataCreation, pies[1]),
			views.PieChart(models.PieValidity, models.ValidityTitle, chart.NoDataValidity, pies[2]),
		},
		Degraded: degraded,
	}
}

// Table pages the committees after the vigencia filter.
func (s *Service) Table(ctx context.Context, f models.Filter, page query.Page) views.Table[models.Committee] {
	_, rows, degraded := s.load(ctx, f, "table")
	if degraded {
		return views.DegradedTable[models.Committee](page)
	}
	return views.NewTable(query.Slice(rows, page), len(rows), page)
}

func (s *Service) Export(ctx context.Context, f models.Filter) (export.Table, error) {
	_, rows, degraded := s.load(ctx, f, "export")
	if degraded {
		return export.Table{}, dErrors.New(dErrors.CodeUnavailable, "committees are temporarily unavailable")
	}
	t := export.Table{Name: models.ExportName, Columns: models.ExportColumns, Rows: make([][]any, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.ExportRow())
	}
	return t, nil
}

// History returns cumulative committees created per ordinance day between
// from and to (YYYY-MM-DD, optional).
func (s *Service) History(ctx context.Context, f models.Filter, from, to string) (views.Timeline, error) {
	r, err := filter.ParseDateRange(from, to, views.DefaultTimelineStart, s.clock.Today(ctx))
	if err != nil {
		return views.Timeline{}, err
	}
	_, rows, degraded := s.load(ctx, f, "history")
	if degraded {
		return views.DegradedTimeline(r), nil
	}
	dates := make([]views.DateCount, 0, len(rows))
	for _, c := range rows {
		if c.OrdinanceDate != "" {
			dates = append(dates, views.DateCount{Raw: c.OrdinanceDate, Count: 1})
		}
	}
	return views.CumulativeTimeline(models.HistoryTitle, models.HistoryYLabel, r, views.EventsByDay(dates)), nil
}

// Lookup returns the committees of one ubigeo code. A malformed code is a
// validation error carrying the message shown to users.
func (s *Service) Lookup(ctx context.Context, raw string) (views.Lookup[models.Committee], error) {
	code, err := domain.ParseUbigeo(raw)
	if err != nil {
		s.metrics.IncrementLookup(dataset, "invalid")
		return views.Lookup[models.Committee]{}, dErrors.Wrap(err, dErrors.CodeValidation, domain.UbigeoFormatMessage)
	}

	start := time.Now()
	rows, err := s.store.ByUbigeo(ctx, code.String())
	if s.recorder().Observe(ctx, "lookup", start, err) {
		s.metrics.IncrementLookup(dataset, "error")
		result := views.NewLookup[models.Committee](nil, models.NoResultsMessage)
		result.Degraded = true
		return result, nil
	}
	s.derive(ctx, rows)
	if len(rows) == 0 {
		s.metrics.IncrementLookup(dataset, "empty")
	} else {
		s.metrics.IncrementLookup(dataset, "found")
	}
	return views.NewLookup(rows, models.NoResultsMessage), nil
}

// load resolves the location names of f and returns the committees matching
// every filter. "no_registrada" matches nothing and runs no query. Names
// that cannot be resolved degrade the page rather than drop the location.
func (s *Service) load(ctx context.Context, f models.Filter, op string) (filter.Location, []models.Committee, bool) {
	start := time.Now()
	names, err := s.locations.Names(ctx, f.Location.Normalized())
	if s.recorder().Observe(ctx, op+"_names", start, err) {
		return names, []models.Committee{}, true
	}
	if f.Registration == models.NotRegistered {
		return names, []models.Committee{}, false
	}

	c := models.Criteria{Location: names, Types: f.Types}
	switch f.Creation {
	case models.Creada:
		created := true
		c.Created = &created
	case models.NoCreada:
		created := false
		c.Created = &created
	}

	start = time.Now()
	rows, err := s.store.List(ctx, c, s.exportLimit)
	if s.recorder().Observe(ctx, op, start, err) {
		return names, []models.Committee{}, true
	}
	s.derive(ctx, rows)

	if f.Operation == "" {
		return names, rows, false
	}
	want := f.Operation == models.Operativa
	kept := rows[:0]
	for _, r := range rows {
		if r.Validity.IsActive() == want {
			kept = append(kept, r)
		}
	}
	return names, kept, false
}

func (s *Service) derive(ctx context.Context, rows []models.Committee) {
	for i := range rows {
		rows[i].Validity = s.clock.Derive(ctx, rows[i].StartDate, rows[i].EndDate)
	}
}

func (s *Service) cacheOptions() cache.Options {
	return cache.Options{Cache: s.cache, TTL: s.cacheTTL, Metrics: s.metrics, Logger: s.logger}
}

func (s *Service) recorder() views.Recorder {
	return views.Recorder{Dataset: dataset, Logger: s.logger, Metrics: s.metrics}
}
