package http

import (
	"net/http"

	"github.com/MKhiriev/go-relations-map/internal/utils"
	"github.com/rs/zerolog"
)

// withTraceID reuses the caller's X-Trace-ID or generates a new one, echoes
// it in the response and stores it in the request context, both as a logger
// field and as the id forwarded to the people API.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
