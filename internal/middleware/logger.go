package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"charityflow/internal/infra/geoip"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog emits one structured line per request. The resolver may be nil,
// in which case no country field is logged.
func AccessLog(logger zerolog.Logger, resolver geoip.CountryResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			ip := ClientIP(r)
			evt := logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Str("ip", ip)
			if rid := RequestIDFromContext(r.Context()); rid != "" {
				evt = evt.Str("request_id", rid)
			}
			if resolver != nil {
				if country, err := resolver.CountryCode(ip); err == nil && country != "" {
					evt = evt.Str("country", country)
				}
			}
			evt.Msg("http request")
		})
	}
}
