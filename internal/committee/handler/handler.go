package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dsld/internal/committee/models"
	"dsld/internal/export"
	"dsld/internal/filter"
	locationModels "dsld/internal/location/models"
	"dsld/internal/platform/metrics"
	"dsld/internal/query"
	"dsld/internal/views"
	"dsld/pkg/platform/httputil"
	request "dsld/pkg/platform/middleware/request"
)

// Service builds the committees page views.
type Service interface {
	TypeOptions(ctx context.Context, codes filter.Location) locationModels.OptionList
	StatusOptions() models.StatusOptions
	StatusState(trigger, registration, creation string) models.StatusState
	Summary(ctx context.Context, f models.Filter) views.Summary
	Table(ctx context.Context, f models.Filter, page query.Page) views.Table[models.Committee]
	Export(ctx context.Context, f models.Filter) (export.Table, error)
	History(ctx context.Context, f models.Filter, from, to string) (views.Timeline, error)
	Lookup(ctx context.Context, ubigeo string) (views.Lookup[models.Committee], error)
}

// Handler serves the CCONNA page. Location options come from the ubigeo
// endpoints under /locations.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a committees handler.
func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/committees/types", h.handleTypes)
	r.Get("/committees/status-options", h.handleStatusOptions)
	r.Get("/committees/status-state", h.handleStatusState)
	r.Get("/committees/summary", h.handleSummary)
	r.Get("/committees/charts/{file}", h.handleChart)
	r.Get("/committees/table", h.handleTable)
	r.Get("/committees/export", h.handleExport)
	r.Get("/committees/history", h.handleHistory)
}

// RegisterLookups registers the ubigeo lookup.
func (h *Handler) RegisterLookups(r chi.Router) {
	r.Get("/committees/lookup", h.handleLookup)
}

func (h *Handler) handleTypes(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.TypeOptions(r.Context(), filter.LocationFromQuery(r.URL.Query())))
}

func (h *Handler) handleStatusOptions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.StatusOptions())
}

func (h *Handler) handleStatusState(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	httputil.WriteJSON(w, http.StatusOK, h.service.StatusState(q.Get("trigger"), q.Get("registration"), q.Get("creation")))
}

// filterFromRequest parses and validates the committee filter.
func filterFromRequest(r *http.Request) (models.Filter, error) {
	f := models.FilterFromQuery(r.URL.Query())
	if err := f.Validate(); err != nil {
		return models.Filter{}, err
	}
	return f, nil
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Summary(r.Context(), f))
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, format, err := views.ParseChartFile(chi.URLParam(r, "file"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, err := filterFromRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if name == "history" {
		q := r.URL.Query()
		tl, err := h.service.History(ctx, f, q.Get("from"), q.Get("to"))
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
	h.logger.WarnContext(ctx, "failed to write committees chart",
		"request_id", request.GetRequestID(ctx),
		"chart", name,
		"error", err,
	)
	httputil.WriteError(w, err)
}

func (h *Handler) handleTable(w http.ResponseWriter, r *http.Request) {
	page, err := filter.PageFromQuery(r.URL.Query(), query.DefaultPageSize, query.MaxPageSize)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, err := filterFromRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Table(r.Context(), f, page))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format, err := views.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	f, err := filterFromRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	t, err := h.service.Export(ctx, f)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := views.WriteExport(w, t, format); err != nil {
		h.logger.ErrorContext(ctx, "failed to write committees export",
			"request_id", request.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
	}
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	q := r.URL.Query()
	tl, err := h.service.History(r.Context(), f, q.Get("from"), q.Get("to"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tl)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Lookup(r.Context(), r.URL.Query().Get("ubigeo"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
