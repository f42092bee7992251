// Package phase holds the development phases whose prompt templates the
// wizard renders, and the rules deciding which phases apply to a project.
package phase

import (
	"slices"

	"github.com/joestump/devguide/internal/project"
)

// SubPhase is a step nested under a guide phase. Sub-phases carry no gates.
type SubPhase struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

// Phase is a named step of the guided development flow.
type Phase struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Prompt          string         `json:"prompt,omitempty"`
	RequiresBackend bool           `json:"requiresBackend,omitempty"`
	ApplicableTo    []project.Type `json:"applicableTo,omitempty"`
	SubPhases       []SubPhase     `json:"subPhases,omitempty"`
}

// Applies reports whether p is relevant for cfg.
func Applies(p Phase, cfg project.Config) bool {
	if p.RequiresBackend && !cfg.NeedsBackend {
		return false
	}
	if len(p.ApplicableTo) > 0 && !slices.Contains(p.ApplicableTo, cfg.Type) {
		return false
	}
	return true
}

// Filter returns the phases that apply to cfg, in their original order.
// An empty result is valid.
func Filter(phases []Phase, cfg project.Config) []Phase {
	out := []Phase{}
	for _, p := range phases {
		if Applies(p, cfg) {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the phase with the given ID.
func Find(phases []Phase, id string) (Phase, bool) {
	for _, p := range phases {
		if p.ID == id {
			return p, true
		}
	}
	return Phase{}, false
}

// FindSub returns the sub-phase with the given ID.
func (p Phase) FindSub(id string) (SubPhase, bool) {
	for _, s := range p.SubPhases {
		if s.ID == id {
			return s, true
		}
	}
	return SubPhase{}, false
}

// Catalog names one of the compiled-in phase sets.
type Catalog string

const (
	// StoryCatalog is the flat, story-driven set gated by project type.
	StoryCatalog Catalog = "story"
	// GuideCatalog is the nested development guide.
	GuideCatalog Catalog = "guide"
)

// ParseCatalog defaults to the story catalog when s is empty.
func ParseCatalog(s string) (Catalog, bool) {
	switch Catalog(s) {
	case "", StoryCatalog:
		return StoryCatalog, true
	case GuideCatalog:
		return GuideCatalog, true
	default:
		return "", false
	}
}

// Phases returns a copy of the catalog's phases.
func (c Catalog) Phases() []Phase {
	switch c {
	case GuideCatalog:
		return GuidePhases()
	default:
		return StoryPhases()
	}
}

func withIDs(phases []Phase) []Phase {
	out := make([]Phase, len(phases))
	for i, p := range phases {
		p.ID = Slugify(p.Title)
		p.ApplicableTo = append([]project.Type(nil), p.ApplicableTo...)
		subs := make([]SubPhase, len(p.SubPhases))
		for j, s := range p.SubPhases {
			s.ID = Slugify(s.Title)
			subs[j] = s
		}
		if len(subs) == 0 {
			subs = nil
		}
		p.SubPhases = subs
		out[i] = p
	}
	return out
}
