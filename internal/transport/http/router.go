// Package httptransport assembles the dashboard's HTTP surface. Dataset
// handlers own their routes; this package mounts them under /api/v1 with the
// shared middleware chain and adds the operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dsld/internal/platform/cache"
	"dsld/internal/platform/metrics"
	platformmw "dsld/internal/platform/middleware"
	"dsld/pkg/domain"
	"dsld/pkg/platform/middleware/admin"
	"dsld/pkg/platform/middleware/metadata"
	request "dsld/pkg/platform/middleware/request"
	"dsld/pkg/platform/middleware/requesttime"
	"dsld/pkg/platform/middleware/version"
)

// Module registers the routes of one dashboard page.
type Module interface {
	Register(r chi.Router)
}

// LookupModule registers identifier lookup routes, which are rate limited.
type LookupModule interface {
	RegisterLookups(r chi.Router)
}

// Dependencies are the collaborators the router mounts.
type Dependencies struct {
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Modules    []Module
	Lookups    []LookupModule
	LookupGate func(http.Handler) http.Handler
	Cache      cache.Cache
	AdminToken string
	Checks     []HealthCheck
}

// NewRouter wires every endpoint behind the common middleware chain.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(request.AccessLog(deps.Logger))
	r.Use(request.Recover(deps.Logger))
	if deps.Metrics != nil {
		r.Use(platformmw.Instrument(deps.Metrics))
	}

	r.Get("/health", healthHandler(deps.Logger, deps.Checks))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(version.ExtractVersion(domain.APIVersionV1))
		for _, m := range deps.Modules {
			m.Register(v1)
		}
		v1.Group(func(lookups chi.Router) {
			if deps.LookupGate != nil {
				lookups.Use(deps.LookupGate)
			}
			for _, m := range deps.Lookups {
				m.RegisterLookups(lookups)
			}
		})
	})

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(admin.RequireAdminToken(deps.AdminToken, deps.Logger))
		ar.Post("/cache/flush", flushCacheHandler(deps.Logger, deps.Cache))
	})

	return r
}
