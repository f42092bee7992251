package handler

import (
	"net/http"

	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/wizard"
)

// TypeStep handles GET /wizard/type.
func (h *WizardHandler) TypeStep(w http.ResponseWriter, r *http.Request) {
	st := h.load(r)
	h.page(w, r, st, wizard.StepType, "type.html", func(p wizardPage) any { return newTypeView(p) })
}

// SelectType handles POST /wizard/type.
func (h *WizardHandler) SelectType(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	t, err := project.ParseType(r.FormValue("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st := h.load(r)
	if err := h.svc.SelectType(r.Context(), st, t); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	h.save(r, st)
	h.typePanel(w, r, st, http.StatusOK, "")
}

// Configure handles POST /wizard/config. The form carries the toggle name
// and, when switched on, value=true.
func (h *WizardHandler) Configure(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	on := r.FormValue("value") == "true"

	st := h.load(r)
	var err error
	switch r.FormValue("toggle") {
	case "backend":
		err = st.SetBackend(on)
	case "database":
		err = st.SetDatabase(on)
	case "authentication":
		err = st.SetAuthentication(on)
	default:
		http.Error(w, "unknown option", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.typePanel(w, r, st, statusFor(err), err.Error())
		return
	}

	h.svc.Refresh(r.Context(), st)
	h.save(r, st)
	h.typePanel(w, r, st, http.StatusOK, "")
}

func (h *WizardHandler) typePanel(w http.ResponseWriter, r *http.Request, st *wizard.State, status int, msg string) {
	if !isHTMX(r) {
		if status != http.StatusOK {
			http.Error(w, msg, status)
			return
		}
		redirect(w, r, "/wizard/type")
		return
	}
	v := newTypeView(newWizardPage(r, st))
	v.Error = msg
	renderFragmentStatus(w, status, "type_panel", v)
}
