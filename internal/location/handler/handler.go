package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dsld/internal/filter"
	"dsld/internal/location/models"
	"dsld/internal/platform/metrics"
	"dsld/pkg/domain"
	dErrors "dsld/pkg/domain-errors"
	"dsld/pkg/platform/httputil"
	request "dsld/pkg/platform/middleware/request"
)

// Service resolves location options and names.
type Service interface {
	Options(ctx context.Context, level filter.Level, parent string) models.OptionList
	NameFor(ctx context.Context, code string) string
}

// Handler serves the cascading location filter endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a location handler.
func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

// Register registers the location routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/locations/names/{code}", h.handleName)
	r.Get("/locations/{level}", h.handleOptions)
}

// handleOptions returns the options of one level under ?parent=.
func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	level, err := filter.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid location level",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, h.service.Options(ctx, level, r.URL.Query().Get("parent")))
}

// handleName returns the display name of one ubigeo code.
func (h *Handler) handleName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code, err := domain.ParseUbigeo(chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, domain.UbigeoFormatMessage))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &NameResponse{
		Code: code.String(),
		Name: h.service.NameFor(ctx, code.String()),
	})
}

// NameResponse is the body of GET /locations/names/{code}.
type NameResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
