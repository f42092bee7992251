package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/joestump/devguide/internal/llm"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	// Completer is nil when AI completion is disabled; /completions then answers 503.
	Completer    llm.Completer
	SystemPrompt string
	Logger       *log.Logger
}

// NewAPIRouter creates a chi sub-router for /api/v1. Every route returns
// application/json.
func NewAPIRouter(deps Deps) chi.Router {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	r := chi.NewRouter()
	r.Use(jsonContentType)

	registerCatalogRoutes(r)
	registerPromptRoutes(r)
	registerStoryRoutes(r)
	registerCompletionRoutes(r, deps.Completer, deps.SystemPrompt, deps.Logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found", codeNotFound)
	})
	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
