package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/shared-note/internal/logger"
)

// withRateLimit rejects requests with 429 once the server-wide token bucket
// is empty. Without a limiter every request passes.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reservation := h.limiter.Reserve()
		if !reservation.OK() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			logger.FromRequest(r).Warn().Dur("retry_after", delay).Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(int((delay+time.Second-1)/time.Second)))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
