package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dsld/internal/export"
	"dsld/internal/filter"
	locationModels "dsld/internal/location/models"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/internal/training/models"
	"dsld/internal/views"
	dErrors "dsld/pkg/domain-errors"
	"dsld/pkg/platform/httputil"
	request "dsld/pkg/platform/middleware/request"
)

// Service builds the trainings page views.
type Service interface {
	LocationOptions(ctx context.Context, level filter.Level, parent filter.Location) locationModels.OptionList
	CourseOptions(ctx context.Context) locationModels.OptionList
	Summary(ctx context.Context, f models.Filter) views.Summary
	Table(ctx context.Context, f models.Filter, page query.Page) views.Table[models.Session]
	Export(ctx context.Context, f models.Filter) (export.Table, error)
	Timeline(ctx context.Context, f models.Filter, from, to string) (views.Timeline, error)
	Lookup(ctx context.Context, dni string) (views.Lookup[models.Participation], error)
}

// Handler serves the trainings (capacitaciones) page.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a trainings handler.
func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

// Register registers the filter, chart, table and export routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/trainings/options/{level}", h.handleLocationOptions)
	r.Get("/trainings/courses", h.handleCourses)
	r.Get("/trainings/summary", h.handleSummary)
	r.Get("/trainings/charts/{file}", h.handleChart)
	r.Get("/trainings/table", h.handleTable)
	r.Get("/trainings/export", h.handleExport)
	r.Get("/trainings/timeline", h.handleTimeline)
}

// RegisterLookups registers the DNI lookup, kept apart so the router can
// rate limit it.
func (h *Handler) RegisterLookups(r chi.Router) {
	r.Get("/trainings/lookup", h.handleLookup)
}

func (h *Handler) handleLocationOptions(w http.ResponseWriter, r *http.Request) {
	level, err := filter.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	parent := filter.LocationFromQuery(r.URL.Query())
	httputil.WriteJSON(w, http.StatusOK, h.service.LocationOptions(r.Context(), level, parent))
}

func (h *Handler) handleCourses(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.CourseOptions(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	f := models.FilterFromQuery(r.URL.Query())
	httputil.WriteJSON(w, http.StatusOK, h.service.Summary(r.Context(), f))
}

// handleChart renders one summary figure, or the timeline, as an image.
func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, format, err := views.ParseChartFile(chi.URLParam(r, "file"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	q := r.URL.Query()
	f := models.FilterFromQuery(q)
	if name == "timeline" {
		tl, err := h.service.Timeline(ctx, f, q.Get("from"), q.Get("to"))
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		err = views.WriteFigure(w, tl.Figure, format, h.metrics)
		h.writeRenderError(ctx, w, err)
		return
	}

	err = views.WriteChart(w, h.service.Summary(ctx, f), name, format, h.metrics)
	h.writeRenderError(ctx, w, err)
}

func (h *Handler) handleTable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := filter.PageFromQuery(q, query.DefaultPageSize, query.MaxPageSize)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Table(r.Context(), models.FilterFromQuery(q), page))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	format, err := views.ParseExportFormat(q.Get("format"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	t, err := h.service.Export(ctx, models.FilterFromQuery(q))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := views.WriteExport(w, t, format); err != nil {
		h.logger.ErrorContext(ctx, "failed to write trainings export",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
	}
}

func (h *Handler) handleTimeline(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tl, err := h.service.Timeline(r.Context(), models.FilterFromQuery(q), q.Get("from"), q.Get("to"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tl)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.service.Lookup(ctx, r.URL.Query().Get("dni"))
	if err != nil {
		h.logger.InfoContext(ctx, "rejected dni lookup",
			"request_id", request.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) writeRenderError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if _, ok := dErrors.From(err); !ok {
		h.logger.ErrorContext(ctx, "failed to render trainings chart",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
