package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/devguide/internal/blueprint"
	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/wizard"
)

func registerCatalogRoutes(r chi.Router) {
	r.Get("/blueprints", listBlueprints)
	r.Get("/blueprints/{type}", getBlueprint)
	r.Get("/phases", listPhases)
}

// listBlueprints returns every project blueprint.
// GET /api/v1/blueprints
//
// @Summary      List blueprints
// @Description  Returns the four project archetypes with their structure, default features and suggested tech.
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  BlueprintListResponse
// @Router       /blueprints [get]
func listBlueprints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BlueprintListResponse{Blueprints: blueprint.All()})
}

// getBlueprint returns one blueprint.
// GET /api/v1/blueprints/{type}
//
// @Summary      Get a blueprint
// @Description  Returns the blueprint for a project type together with the configuration it implies and the toggles it offers.
// @Tags         Catalog
// @Produce      json
// @Param        type  path      string  true  "Project type (static, fullstack, backend, mobile)"
// @Success      200   {object}  BlueprintResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /blueprints/{type} [get]
func getBlueprint(w http.ResponseWriter, r *http.Request) {
	t, err := project.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error(), codeUnknownType)
		return
	}
	writeJSON(w, http.StatusOK, BlueprintResponse{
		Blueprint:     blueprint.Get(t),
		DefaultConfig: blueprint.DeriveConfig(t, project.Config{}),
		Toggles:       blueprint.TogglesFor(t),
	})
}

// listPhases returns the phases that apply to a configuration.
// GET /api/v1/phases
//
// @Summary      List applicable phases
// @Description  Filters the story-driven or guide catalog by project type and backend choice.
// @Tags         Catalog
// @Produce      json
// @Param        type            query     string  false  "Project type"  default(static)
// @Param        backend         query     bool    false  "Override the backend choice"
// @Param        database        query     bool    false  "Override the database choice"
// @Param        authentication  query     bool    false  "Authentication required"
// @Param        catalog         query     string  false  "story or guide"  default(story)
// @Success      200  {object}  PhaseListResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /phases [get]
func listPhases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cat, ok := phase.ParseCatalog(q.Get("catalog"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown catalog %q", q.Get("catalog")), codeBadRequest)
		return
	}

	in := ProjectInput{Type: q.Get("type")}
	if in.Type == "" {
		in.Type = project.Static.String()
	}
	var err error
	if in.Backend, err = queryBool(q.Get("backend")); err != nil {
		writeError(w, http.StatusBadRequest, "backend must be a boolean", codeBadRequest)
		return
	}
	if in.Database, err = queryBool(q.Get("database")); err != nil {
		writeError(w, http.StatusBadRequest, "database must be a boolean", codeBadRequest)
		return
	}
	auth, err := queryBool(q.Get("authentication"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "authentication must be a boolean", codeBadRequest)
		return
	}
	in.Authentication = auth != nil && *auth

	cfg, err := resolveConfig(in)
	if err != nil {
		writeConfigError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PhaseListResponse{
		Catalog: cat,
		Config:  cfg,
		Phases:  phase.Filter(cat.Phases(), cfg),
	})
}

func queryBool(s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// resolveConfig turns API input into a configuration using the wizard's rules.
func resolveConfig(in ProjectInput) (project.Config, error) {
	t, err := project.ParseType(in.Type)
	if err != nil {
		return project.Config{}, err
	}
	return wizard.ResolveConfig(t, wizard.Overrides{
		Backend:        in.Backend,
		Database:       in.Database,
		Authentication: in.Authentication,
	})
}

func writeConfigError(w http.ResponseWriter, err error) {
	if errors.Is(err, project.ErrUnknownType) {
		writeError(w, http.StatusBadRequest, err.Error(), codeUnknownType)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error(), codeInvalidConfig)
}
