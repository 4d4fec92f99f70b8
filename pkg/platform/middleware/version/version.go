// Package version provides middleware for API version extraction.
package version

import (
	"net/http"

	"dsld/pkg/domain"
	"dsld/pkg/requestcontext"
)

// ExtractVersion records the API version matched by a Chi subrouter.
//
//	r.Route("/api/v1", func(v1 chi.Router) {
//	    v1.Use(version.ExtractVersion(domain.APIVersionV1))
//	})
func ExtractVersion(v domain.APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithAPIVersion(r.Context(), v)
			w.Header().Set("API-Version", v.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
