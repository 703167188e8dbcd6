package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-study-sync/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID puts a logger tagged with trace_id into the request context
// and echoes the id back. Only UUIDs from the caller are reused.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = utils.NewTraceID()
		}

		r = r.WithContext(h.logger.WithTraceID(traceID).WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
