package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"dsld/internal/platform/cache"
	"dsld/pkg/platform/httputil"
	request "dsld/pkg/platform/middleware/request"
)

const healthTimeout = 2 * time.Second

// HealthCheck probes one backing service.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type flushResponse struct {
	Flushed int `json:"flushed"`
}

// healthHandler runs every check concurrently. Any failure turns the
// response into 503.
func healthHandler(logger *slog.Logger, checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		var mu sync.Mutex
		results := make(map[string]string, len(checks))
		g, gctx := errgroup.WithContext(ctx)
		for _, c := range checks {
			g.Go(func() error {
				err := c.Check(gctx)
				status := "ok"
				if err != nil {
					status = "unavailable"
				}
				mu.Lock()
				results[c.Name] = status
				mu.Unlock()
				return err
			})
		}

		if err := g.Wait(); err != nil {
			logger.WarnContext(r.Context(), "health check failed",
				"request_id", request.GetRequestID(r.Context()),
				"error", err,
			)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Checks: results})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Checks: results})
	}
}

// flushCacheHandler drops cached option lists after a data reload.
func flushCacheHandler(logger *slog.Logger, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if c == nil {
			httputil.WriteJSON(w, http.StatusOK, flushResponse{})
			return
		}

		n, err := c.Flush(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "failed to flush option cache",
				"request_id", request.GetRequestID(ctx),
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
		logger.InfoContext(ctx, "option cache flushed",
			"request_id", request.GetRequestID(ctx),
			"entries", n,
		)
		httputil.WriteJSON(w, http.StatusOK, flushResponse{Flushed: n})
	}
}
