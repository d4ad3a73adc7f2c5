// Package httpapi wires handlers and middleware into the chi router.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"charityflow/internal/http/handlers"
	"charityflow/internal/infra/geoip"
	"charityflow/internal/middleware"
)

type RouterOptions struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	Resolver        geoip.CountryResolver
}

func NewRouter(app *handlers.App, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(app.Logger, opts.Resolver))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}
	r.Use(chimw.Recoverer)

	r.Get("/v1/healthz", app.Health)

	r.Route("/ngos", func(r chi.Router) {
		r.Post("/", app.NGOsCreate)
		r.Get("/", app.NGOsList)
		r.Get("/{id}", app.NGOsGet)
		r.Put("/{id}", app.NGOsUpdate)
		r.Delete("/{id}", app.NGOsDelete)
	})

	r.Route("/donations", func(r chi.Router) {
		r.Post("/", app.DonationsCreate)
		r.Get("/", app.DonationsList)
		// Static segments win over the {id} wildcard.
		r.Get("/aggregate/join", app.DonationsJoined)
		// Legacy alias for the joined listing.
		r.Get("/populated/all", app.DonationsJoined)
		r.Get("/analytics/by-ngo", app.AnalyticsByNGO)
		r.Get("/analytics/by-method", app.AnalyticsByMethod)
		r.Get("/analytics/daily", app.AnalyticsDaily)
		r.Get("/export/csv", app.ExportCSV)
		r.Get("/{id}", app.DonationsGet)
		r.Put("/{id}", app.DonationsUpdate)
		r.Delete("/{id}", app.DonationsDelete)
	})

	return r
}
