package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/joestump/devguide/internal/llm"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/wizard"
)

// stateKey is the session key holding the JSON encoded wizard state.
const stateKey = "wizard_state"

// WizardHandler serves the three wizard steps. Every handler loads the
// session state, applies one change and stores it again.
type WizardHandler struct {
	sessions     *scs.SessionManager
	svc          *wizard.Service
	ai           llm.Completer
	systemPrompt string
	logger       *log.Logger
}

// NewWizardHandler creates a WizardHandler. ai may be nil when AI completion
// is disabled.
func NewWizardHandler(sm *scs.SessionManager, svc *wizard.Service, ai llm.Completer, systemPrompt string, logger *log.Logger) *WizardHandler {
	return &WizardHandler{sessions: sm, svc: svc, ai: ai, systemPrompt: systemPrompt, logger: logger}
}

func (h *WizardHandler) load(r *http.Request) *wizard.State {
	raw := h.sessions.GetBytes(r.Context(), stateKey)
	if len(raw) == 0 {
		return wizard.New()
	}
	var st wizard.State
	if err := json.Unmarshal(raw, &st); err != nil {
		h.logger.Warn("discarding unreadable wizard state", "err", err)
		return wizard.New()
	}
	if !st.Config.Type.Valid() {
		return wizard.New()
	}
	return &st
}

func (h *WizardHandler) save(r *http.Request, st *wizard.State) {
	raw, err := json.Marshal(st)
	if err != nil {
		h.logger.Error("encoding wizard state", "err", err)
		return
	}
	h.sessions.Put(r.Context(), stateKey, raw)
}

// Index handles GET /, sending the browser to the current step.
func (h *WizardHandler) Index(w http.ResponseWriter, r *http.Request) {
	st := h.load(r)
	http.Redirect(w, r, "/wizard/"+st.Step.String(), http.StatusFound)
}

// GoTo handles POST /wizard/step/{step}.
func (h *WizardHandler) GoTo(w http.ResponseWriter, r *http.Request) {
	step, err := wizard.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	st := h.load(r)
	st.Step = step
	h.save(r, st)
	redirect(w, r, "/wizard/"+step.String())
}

// Reset handles POST /wizard/reset.
func (h *WizardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Reset(r.Context())
	h.save(r, st)
	redirect(w, r, "/wizard/type")
}

// page renders a step, recording it as the current one.
func (h *WizardHandler) page(w http.ResponseWriter, r *http.Request, st *wizard.State, step wizard.Step, tmpl string, data func(wizardPage) any) {
	if st.Step != step {
		st.Step = step
		h.save(r, st)
	}
	render(w, tmpl, data(newWizardPage(r, st)))
}

// redirect navigates the browser. HTMX requests get HX-Redirect so the swap
// is replaced by a full navigation.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// collectionParam parses the {collection} URL segment.
func collectionParam(r *http.Request) (project.Collection, error) {
	return project.ParseCollection(chi.URLParam(r, "collection"))
}

// statusFor maps wizard errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, wizard.ErrItemIndex), errors.Is(err, wizard.ErrStoryIndex):
		return http.StatusNotFound
	case errors.Is(err, wizard.ErrToggleUnavailable),
		errors.Is(err, wizard.ErrDatabaseWithoutBackend),
		errors.Is(err, project.ErrUnknownType):
		return http.StatusBadRequest
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
