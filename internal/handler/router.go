package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/devguide/docs/swagger"
	"github.com/joestump/devguide/internal/api"
	"github.com/joestump/devguide/internal/llm"
	"github.com/joestump/devguide/internal/wizard"
	"github.com/joestump/devguide/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	Wizard         *wizard.Service
	// Completer is nil when AI completion is disabled.
	Completer    llm.Completer
	SystemPrompt string
	Logger       *log.Logger
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Static assets (embedded). fs.Sub so the file server sees css/app.css
	// directly, not static/css/app.css.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticSub))))

	r.Get("/healthz", Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/theme", setTheme)

	// Wizard pages need the session; nothing else does.
	wh := NewWizardHandler(deps.SessionManager, deps.Wizard, deps.Completer, deps.SystemPrompt, deps.Logger)
	r.Group(func(r chi.Router) {
		r.Use(deps.SessionManager.LoadAndSave)

		r.Get("/", wh.Index)
		r.Post("/wizard/step/{step}", wh.GoTo)
		r.Post("/wizard/reset", wh.Reset)

		r.Get("/wizard/type", wh.TypeStep)
		r.Post("/wizard/type", wh.SelectType)
		r.Post("/wizard/config", wh.Configure)

		r.Get("/wizard/details", wh.DetailsStep)
		r.Post("/wizard/details", wh.SaveDetails)
		r.Post("/wizard/items/{collection}", wh.AddItem)
		r.Put("/wizard/items/{collection}/{index}", wh.UpdateItem)
		r.Delete("/wizard/items/{collection}/{index}", wh.RemoveItem)
		r.Post("/wizard/presets/{collection}", wh.AddPreset)

		r.Get("/wizard/prompts", wh.PromptsStep)
		r.Post("/wizard/stories/select", wh.SelectStory)
		r.Get("/wizard/stories/edit", wh.EditStory)
		r.Post("/wizard/stories", wh.SaveStory)
		r.Post("/wizard/prompts/{phase}/copy", wh.Copy)
		r.Post("/wizard/prompts/{phase}/generate", wh.Generate)
	})

	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{
		Completer:    deps.Completer,
		SystemPrompt: deps.SystemPrompt,
		Logger:       deps.Logger,
	}))

	return r
}

// Health handles GET /healthz.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
