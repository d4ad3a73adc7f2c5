package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"charityflow/internal/domain"
)

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var d domain.Donation
	if !a.decode(w, r, &d) {
		return
	}
	created, err := a.Donations.Create(r.Context(), &d)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryPage(q)
	items, total, err := a.Donations.List(r.Context(),
		donationFilterFromQuery(q),
		q.Get("sortBy"),
		domain.ParseSortOrder(q.Get("order")),
		page,
	)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
		"page":  page.Number,
		"limit": page.Limit,
	})
}

func (a *App) DonationsGet(w http.ResponseWriter, r *http.Request) {
	d, err := a.Donations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, d)
}

func (a *App) DonationsUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.DonationPatch
	if !a.decode(w, r, &patch) {
		return
	}
	d, err := a.Donations.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, d)
}

func (a *App) DonationsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Donations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"deleted": true})
}

// DonationsJoined lists donations with their organization embedded, newest
// first. Donations pointing at a missing organization are omitted.
func (a *App) DonationsJoined(w http.ResponseWriter, r *http.Request) {
	items, err := a.Analytics.Joined(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}
