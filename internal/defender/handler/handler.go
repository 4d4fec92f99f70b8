package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dsld/internal/defender/models"
	"dsld/internal/export"
	"dsld/internal/filter"
	locationModels "dsld/internal/location/models"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/internal/views"
	"dsld/pkg/platform/httputil"
	request "dsld/pkg/platform/middleware/request"
)

// Service builds the defenders page views.
type Service interface {
	LocationOptions(ctx context.Context, level filter.Level, parent filter.Location) locationModels.OptionList
	RoleOptions(ctx context.Context) models.RoleOptionList
	OccupationOptions(ctx context.Context) locationModels.OptionList
	Summary(ctx context.Context, f models.Filter) views.Summary
	Table(ctx context.Context, f models.Filter, page query.Page) views.Table[models.Defender]
	Export(ctx context.Context, f models.Filter) (export.Table, error)
	Timeline(ctx context.Context, f models.Filter, from, to string) (views.Timeline, error)
	Search(ctx context.Context, term string) (views.Lookup[models.Match], error)
}

// Handler serves the defenders page.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a defenders handler.
func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/defenders/options/{level}", h.handleLocationOptions)
	r.Get("/defenders/roles", h.handleRoles)
	r.Get("/defenders/occupations", h.handleOccupations)
	r.Get("/defenders/summary", h.handleSummary)
	r.Get("/defenders/charts/{file}", h.handleChart)
	r.Get("/defenders/table", h.handleTable)
	r.Get("/defenders/export", h.handleExport)
	r.Get("/defenders/timeline", h.handleTimeline)
}

// RegisterLookups registers the free-text search.
func (h *Handler) RegisterLookups(r chi.Router) {
	r.Get("/defenders/search", h.handleSearch)
}

func (h *Handler) handleLocationOptions(w http.ResponseWriter, r *http.Request) {
	level, err := filter.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.LocationOptions(r.Context(), level, filter.LocationFromQuery(r.URL.Query())))
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.RoleOptions(r.Context()))
}

func (h *Handler) handleOccupations(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.OccupationOptions(r.Context()))
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

	q := r.URL.Query()
	f := models.FilterFromQuery(q)
	if name == "timeline" {
		tl, err := h.service.Timeline(ctx, f, q.Get("from"), q.Get("to"))
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		h.writeRenderError(ctx, w, name, views.WriteFigure(w, tl.Figure, format, h.metrics))
		return
	}
	h.writeRenderError(ctx, w, name, views.WriteChart(w, h.service.Summary(ctx, f), name, format, h.metrics))
}

func (h *Handler) writeRenderError(ctx context.Context, w http.ResponseWriter, name string, err error) {
	if err == nil {
		return
	}
	h.logger.WarnContext(ctx, "failed to write defenders chart",
		"request_id", request.GetRequestID(ctx),
		"chart", name,
		"error", err,
	)
	httputil.WriteError(w, err)
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
		h.logger.ErrorContext(ctx, "failed to write defenders export",
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

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
