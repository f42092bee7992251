package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/devguide/internal/metrics"
	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/wizard"
)

func registerPromptRoutes(r chi.Router) {
	r.Post("/prompts/render", renderPrompt)
}

// renderPrompt substitutes project details into one phase prompt.
// POST /api/v1/prompts/render
//
// @Summary      Render a prompt
// @Description  Fills a story-driven phase prompt, or a guide sub-phase prompt with the project header, from the given project.
// @Tags         Prompts
// @Accept       json
// @Produce      json
// @Param        body  body      RenderPromptRequest  true  "Project and phase to render"
// @Success      200   {object}  RenderPromptResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /prompts/render [post]
func renderPrompt(w http.ResponseWriter, r *http.Request) {
	var req RenderPromptRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}
	if req.Phase == "" {
		writeError(w, http.StatusBadRequest, "phase is required", codeBadRequest)
		return
	}
	cat, ok := phase.ParseCatalog(req.Catalog)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown catalog %q", req.Catalog), codeBadRequest)
		return
	}
	cfg, err := resolveConfig(req.Project)
	if err != nil {
		writeConfigError(w, err)
		return
	}

	st := &wizard.State{Config: cfg, Details: req.Details, SelectedStory: -1}
	if req.Story != nil {
		i := *req.Story
		if i < 0 || i >= len(req.Details.UserStories) || project.IsPlaceholder(req.Details.UserStories[i]) {
			writeError(w, http.StatusNotFound, wizard.ErrStoryIndex.Error(), codeNotFound)
			return
		}
		st.SelectedStory = i
	}

	text, ok := wizard.PromptFor(st, cat, req.Phase, req.Sub)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("phase %q does not apply to this project", req.Phase), codeNotFound)
		return
	}
	metrics.PromptsRenderedTotal.WithLabelValues("api").Inc()
	writeJSON(w, http.StatusOK, RenderPromptResponse{
		Config: cfg,
		Phase:  req.Phase,
		Sub:    req.Sub,
		Prompt: text,
	})
}
