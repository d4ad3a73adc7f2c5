package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"charityflow/internal/domain"
	"charityflow/internal/service"
)

// App bundles the services the HTTP layer delegates to.
type App struct {
	Logger    zerolog.Logger
	NGOs      *service.NGOService
	Donations *service.DonationService
	Analytics *service.AnalyticsService
}

func NewApp(logger zerolog.Logger, ngos *service.NGOService, donations *service.DonationService, analytics *service.AnalyticsService) *App {
	return &App{Logger: logger, NGOs: ngos, Donations: donations, Analytics: analytics}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": code, "message": message})
}

// fail maps domain errors onto HTTP responses. Validation reports carry the
// full list of field violations; everything unexpected becomes an opaque 500.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		a.json(w, http.StatusBadRequest, map[string]any{
			"error":  "validation_failed",
			"fields": verrs,
		})
	case errors.Is(err, domain.ErrMalformedID):
		a.error(w, http.StatusBadRequest, "malformed_id", "id is not a valid identifier")
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "record not found")
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}
