package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns an id to every request. An id supplied by the caller in
// the X-Request-Id header is kept, otherwise a fresh UUID is generated. The
// id is stored in the request context and echoed back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
