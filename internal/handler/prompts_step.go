package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/devguide/internal/clipboard"
	"github.com/joestump/devguide/internal/guideline"
	"github.com/joestump/devguide/internal/llm"
	"github.com/joestump/devguide/internal/metrics"
	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/prompt"
	"github.com/joestump/devguide/internal/story"
	"github.com/joestump/devguide/internal/wizard"
)

// storiesRequestID addresses the user stories generator prompt in the copy
// and generate routes. It cannot collide with a phase ID.
const storiesRequestID = "_stories-request"

// PromptsStep handles GET /wizard/prompts.
func (h *WizardHandler) PromptsStep(w http.ResponseWriter, r *http.Request) {
	st := h.load(r)
	h.page(w, r, st, wizard.StepPrompts, "prompts.html", func(p wizardPage) any {
		rendered := h.svc.Rendered(st)
		metrics.PromptsRenderedTotal.WithLabelValues("web").Add(float64(countPrompts(rendered)))
		return promptsView{
			wizardPage: p,
			Header:     prompt.Header(st.Config),
			Guide:      rendered.Guide,
			Stories:    newStoryPanel(st, rendered, h.ai != nil),
			Guidelines: guideline.All(),
			AIEnabled:  h.ai != nil,
		}
	})
}

func countPrompts(p wizard.Prompts) int {
	n := len(p.Story)
	for _, g := range p.Guide {
		n += len(g.Subs)
	}
	return n
}

// SelectStory handles POST /wizard/stories/select.
func (h *WizardHandler) SelectStory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	i, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	st := h.load(r)
	if err := st.SelectStory(i); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	h.save(r, st)
	h.storyPanel(w, r, st)
}

// EditStory handles GET /wizard/stories/edit?index=N. A missing or negative
// index opens an empty editor for a new story.
func (h *WizardHandler) EditStory(w http.ResponseWriter, r *http.Request) {
	st := h.load(r)
	i := -1
	if raw := r.URL.Query().Get("index"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid index", http.StatusBadRequest)
			return
		}
		i = n
	}
	var s story.UserStory
	if i >= 0 {
		if i >= len(st.Details.UserStories) {
			http.Error(w, wizard.ErrStoryIndex.Error(), http.StatusNotFound)
			return
		}
		s = story.Parse(st.Details.UserStories[i])
	}
	renderFragment(w, "story_editor", newStoryEditor(i, s))
}

// SaveStory handles POST /wizard/stories. The saved story becomes the
// selected one.
func (h *WizardHandler) SaveStory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	i, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		i = -1
	}
	s := story.UserStory{
		Title:              strings.TrimSpace(r.FormValue("title")),
		Description:        strings.TrimSpace(normalizeNewlines(r.FormValue("description"))),
		AcceptanceCriteria: story.Criteria(normalizeNewlines(r.FormValue("criteria"))),
	}
	if s.Title == "" {
		ed := newStoryEditor(i, s)
		ed.Criteria = r.FormValue("criteria")
		ed.Error = "A story needs a title."
		w.Header().Set("HX-Retarget", "#story-editor")
		w.Header().Set("HX-Reswap", "outerHTML")
		renderFragmentStatus(w, http.StatusBadRequest, "story_editor", ed)
		return
	}

	st := h.load(r)
	idx, err := st.SaveStory(i, s)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = st.SelectStory(idx)
	h.commit(r, st)
	h.storyPanel(w, r, st)
}

func (h *WizardHandler) storyPanel(w http.ResponseWriter, r *http.Request, st *wizard.State) {
	if !isHTMX(r) {
		redirect(w, r, "/wizard/prompts")
		return
	}
	renderFragment(w, "story_panel", newStoryPanel(st, h.svc.Rendered(st), h.ai != nil))
}

// promptText resolves the prompt addressed by the {phase} URL segment and
// the catalog/sub form values.
func promptText(r *http.Request, st *wizard.State) (string, bool) {
	id := chi.URLParam(r, "phase")
	if id == storiesRequestID {
		return prompt.UserStoriesRequest(st.Details.Name, st.Details.Features), true
	}
	if phase.ValidateSlug(id) != nil {
		return "", false
	}
	cat, ok := phase.ParseCatalog(r.FormValue("catalog"))
	if !ok {
		return "", false
	}
	return wizard.PromptFor(st, cat, id, r.FormValue("sub"))
}

// Copy handles POST /wizard/prompts/{phase}/copy. The browser performs the
// clipboard write when it sees the HX-Trigger event.
func (h *WizardHandler) Copy(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	st := h.load(r)
	text, ok := promptText(r, st)
	if !ok {
		http.Error(w, "prompt not found", http.StatusNotFound)
		return
	}
	metrics.PromptsRenderedTotal.WithLabelValues("web").Inc()
	clipboard.Copy(clipboard.HXTrigger{W: w}, h.logger, text)
	renderFragment(w, "copied", nil)
}

// Generate handles POST /wizard/prompts/{phase}/generate.
func (h *WizardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "phase")
	// Guide sub-phases share a phase ID, so the result slot includes the sub.
	slot := id
	if sub := r.FormValue("sub"); sub != "" {
		slot += "-" + sub
	}
	if h.ai == nil {
		renderFragmentStatus(w, http.StatusServiceUnavailable, "ai_result", aiResult{Phase: slot, Error: "AI generation is not configured on this server."})
		return
	}

	st := h.load(r)
	text, ok := promptText(r, st)
	if !ok {
		http.Error(w, "prompt not found", http.StatusNotFound)
		return
	}
	metrics.PromptsRenderedTotal.WithLabelValues("web").Inc()

	system, err := llm.SystemPrompt(h.systemPrompt, llm.SystemData{
		ProjectName: st.Details.Name,
		ProjectType: st.Config.Type.String(),
		Description: st.Details.Description,
	})
	if err != nil {
		h.logger.Error("rendering system prompt", "err", err)
		renderFragmentStatus(w, http.StatusInternalServerError, "ai_result", aiResult{Phase: slot, Error: "The system prompt template is invalid."})
		return
	}

	out, err := h.ai.Complete(r.Context(), llm.CompletionRequest{System: system, Prompt: text})
	if err != nil {
		h.logger.Warn("ai completion failed", "phase", id, "err", err)
		status := http.StatusBadGateway
		if errors.Is(err, llm.ErrNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		renderFragmentStatus(w, status, "ai_result", aiResult{Phase: slot, Error: err.Error()})
		return
	}
	renderFragment(w, "ai_result", aiResult{Phase: slot, Content: out})
}
