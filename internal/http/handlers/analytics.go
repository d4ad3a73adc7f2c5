package handlers

import (
	"fmt"
	"net/http"

	"charityflow/internal/service"
)

// AnalyticsByNGO reports completed totals per organization, largest first.
func (a *App) AnalyticsByNGO(w http.ResponseWriter, r *http.Request) {
	items, err := a.Analytics.ByNGO(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) AnalyticsByMethod(w http.ResponseWriter, r *http.Request) {
	items, err := a.Analytics.ByMethod(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// AnalyticsDaily buckets completed donations by UTC calendar day. Optional
// startDate/endDate query parameters bound the range.
func (a *App) AnalyticsDaily(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := a.Analytics.Daily(r.Context(), queryTime(q, "startDate"), queryTime(q, "endDate"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) ExportCSV(w http.ResponseWriter, r *http.Request) {
	body, err := a.Analytics.ExportCSV(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", service.ExportFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
