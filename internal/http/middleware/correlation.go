package middleware

import (
	"net/http"

	"github.com/mebella/catalog-api/pkg/correlationid"
)

// CorrelationID propagates the caller's correlation id, generating one when
// the header is absent. The id is echoed back on the response and attached to
// the request context for log enrichment.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = correlationid.New()
			}

			w.Header().Set(correlationid.Header, id)

			ctx := correlationid.WithContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
