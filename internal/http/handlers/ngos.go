package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"charityflow/internal/domain"
)

func (a *App) NGOsCreate(w http.ResponseWriter, r *http.Request) {
	var n domain.NGO
	if !a.decode(w, r, &n) {
		return
	}
	created, err := a.NGOs.Create(r.Context(), &n)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) NGOsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryPage(q)
	items, total, err := a.NGOs.List(r.Context(),
		ngoFilterFromQuery(q),
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

func (a *App) NGOsGet(w http.ResponseWriter, r *http.Request) {
	n, err := a.NGOs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, n)
}

func (a *App) NGOsUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.NGOPatch
	if !a.decode(w, r, &patch) {
		return
	}
	n, err := a.NGOs.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, n)
}

func (a *App) NGOsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.NGOs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"deleted": true})
}
