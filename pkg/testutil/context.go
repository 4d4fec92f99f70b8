package testutil

import (
	"net/http"

	"dsld/pkg/requestcontext"
)

// WithClientIP sets the client IP the metadata middleware would extract.
func WithClientIP(req *http.Request, ip string) *http.Request {
	ctx := requestcontext.WithClientMetadata(req.Context(), ip, req.UserAgent())
	return req.WithContext(ctx)
}
