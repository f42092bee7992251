package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/joestump/devguide/internal/llm"
)

type completionsHandler struct {
	ai           llm.Completer
	systemPrompt string
	logger       *log.Logger
}

func registerCompletionRoutes(r chi.Router, ai llm.Completer, systemPrompt string, logger *log.Logger) {
	h := &completionsHandler{ai: ai, systemPrompt: systemPrompt, logger: logger}
	r.Post("/completions", h.Create)
}

// Create sends a prompt to the configured AI provider.
// POST /api/v1/completions
//
// @Summary      Generate a completion
// @Description  Sends the prompt, with a system prompt built from the project fields, to the configured AI provider.
// @Tags         Completions
// @Accept       json
// @Produce      json
// @Param        body  body      CompletionRequest  true  "Prompt and project context"
// @Success      200   {object}  CompletionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /completions [post]
func (h *completionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.ai == nil {
		writeError(w, http.StatusServiceUnavailable, "AI generation is not configured", codeNotConfigured)
		return
	}
	var req CompletionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required", codeBadRequest)
		return
	}

	system, err := llm.SystemPrompt(h.systemPrompt, llm.SystemData{
		ProjectName: req.ProjectName,
		ProjectType: req.ProjectType,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("rendering system prompt", "err", err)
		writeError(w, http.StatusInternalServerError, "invalid system prompt template", codeInternal)
		return
	}

	out, err := h.ai.Complete(r.Context(), llm.CompletionRequest{System: system, Prompt: req.Prompt})
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err.Error(), codeNotConfigured)
		return
	case err != nil:
		h.logger.Warn("ai completion failed", "err", err)
		writeError(w, http.StatusBadGateway, err.Error(), codeUpstream)
		return
	}
	writeJSON(w, http.StatusOK, CompletionResponse{Content: out})
}
