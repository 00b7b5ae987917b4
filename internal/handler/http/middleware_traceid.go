package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"
)

// withTraceID attaches a request-scoped logger carrying trace_id. The client
// sends X-Request-ID; X-Trace-ID is accepted too. Without either a new UUID
// is generated. The chosen ID is echoed in X-Trace-ID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(requestIDHeader)
		if traceID == "" {
			traceID = r.Header.Get(traceIDHeader)
		}
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
