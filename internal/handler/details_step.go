package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/wizard"
)

// DetailsStep handles GET /wizard/details.
func (h *WizardHandler) DetailsStep(w http.ResponseWriter, r *http.Request) {
	st := h.load(r)
	h.page(w, r, st, wizard.StepDetails, "details.html", func(p wizardPage) any { return newDetailsView(p) })
}

// SaveDetails handles POST /wizard/details. Only the fields present in the
// form are updated.
func (h *WizardHandler) SaveDetails(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	st := h.load(r)
	if r.Form.Has("name") {
		st.SetName(strings.TrimSpace(r.FormValue("name")))
	}
	if r.Form.Has("description") {
		st.SetDescription(normalizeNewlines(r.FormValue("description")))
	}
	h.save(r, st)

	if !isHTMX(r) {
		redirect(w, r, "/wizard/details")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /wizard/items/{collection}.
func (h *WizardHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	st := h.load(r)
	st.AddItem(c)
	h.commit(r, st)
	h.collection(w, r, st, c)
}

// UpdateItem handles PUT /wizard/items/{collection}/{index}.
func (h *WizardHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	c, i, ok := itemParams(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	st := h.load(r)
	if err := st.UpdateItem(c, i, normalizeNewlines(r.FormValue("value"))); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	h.commit(r, st)

	// The input already shows the new value; re-rendering would steal focus.
	if isHTMX(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	redirect(w, r, "/wizard/details")
}

// RemoveItem handles DELETE /wizard/items/{collection}/{index}.
func (h *WizardHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, i, ok := itemParams(w, r)
	if !ok {
		return
	}
	st := h.load(r)
	if err := st.RemoveItem(c, i); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	h.commit(r, st)
	h.collection(w, r, st, c)
}

// AddPreset handles POST /wizard/presets/{collection}.
func (h *WizardHandler) AddPreset(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	st := h.load(r)
	if st.AddPreset(c, r.FormValue("name")) {
		h.commit(r, st)
	}
	h.collection(w, r, st, c)
}

// commit stores the session state and the per-type snapshot.
func (h *WizardHandler) commit(r *http.Request, st *wizard.State) {
	h.svc.Persist(r.Context(), st)
	h.save(r, st)
}

func (h *WizardHandler) collection(w http.ResponseWriter, r *http.Request, st *wizard.State, c project.Collection) {
	if !isHTMX(r) {
		redirect(w, r, "/wizard/details")
		return
	}
	renderFragment(w, "collection", newCollectionView(st, c))
}

func itemParams(w http.ResponseWriter, r *http.Request) (project.Collection, int, bool) {
	c, err := collectionParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return "", 0, false
	}
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return "", 0, false
	}
	return c, i, true
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
