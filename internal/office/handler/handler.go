package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dsld/internal/export"
	"dsld/internal/filter"
	locationModels "dsld/internal/location/models"
	"dsld/internal/office/models"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/internal/views"
	"dsld/pkg/platform/httputil"
	request "dsld/pkg/platform/middleware/request"
)

// Service builds the offices page views.
type Service interface {
	LocationOptions(ctx context.Context, level filter.Level, parent filter.Location) locationModels.OptionList
	StateOptions(ctx context.Context) locationModels.OptionList
	Summary(ctx context.Context, f models.Filter) views.Summary
	Table(ctx context.Context, f models.Filter, page query.Page) views.Table[models.Summary]
	Export(ctx context.Context, f models.Filter) (export.Table, error)
	Lookup(ctx context.Context, code string) (views.Lookup[models.Record], error)
}

// Handler serves the offices (defensorías) page.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates an offices handler.
func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/offices/options/{level}", h.handleLocationOptions)
	r.Get("/offices/states", h.handleStates)
	r.Get("/offices/summary", h.handleSummary)
	r.Get("/offices/charts/{file}", h.handleChart)
	r.Get("/offices/table", h.handleTable)
	r.Get("/offices/export", h.handleExport)
}

func (h *Handler) RegisterLookups(r chi.Router) {
	r.Get("/offices/lookup", h.handleLookup)
}

func (h *Handler) handleLocationOptions(w http.ResponseWriter, r *http.Request) {
	level, err := filter.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.LocationOptions(r.Context(), level, filter.LocationFromQuery(r.URL.Query())))
}

func (h *Handler) handleStates(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.StateOptions(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Summary(r.Context(), models.FilterFromQuery(r.URL.Query())))
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, format, err := views.ParseChartFile(chi.URLParam(r, "file"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	summary := h.service.Summary(ctx, models.FilterFromQuery(r.URL.Query()))
	if err := views.WriteChart(w, summary, name, format, h.metrics); err != nil {
		h.logger.WarnContext(ctx, "failed to write offices chart",
			"request_id", request.GetRequestID(ctx),
			"chart", name,
			"error", err,
		)
		httputil.WriteError(w, err)
	}
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
		h.logger.ErrorContext(ctx, "failed to write offices export",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
	}
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Lookup(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
