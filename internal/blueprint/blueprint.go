// Package blueprint describes the project archetypes offered on the first
// wizard step: their structural segments, candidate features and recommended
// technologies.
package blueprint

import "github.com/joestump/devguide/internal/project"

// FeatureCategory groups features in the preset picker.
type FeatureCategory string

const (
	Core     FeatureCategory = "core"
	Optional FeatureCategory = "optional"
	Advanced FeatureCategory = "advanced"
)

// FeatureCategories lists feature categories in display order.
var FeatureCategories = []FeatureCategory{Core, Optional, Advanced}

// TechCategory groups technologies in the preset picker.
type TechCategory string

const (
	TechFrontend   TechCategory = "frontend"
	TechBackend    TechCategory = "backend"
	TechDatabase   TechCategory = "database"
	TechDeployment TechCategory = "deployment"
	TechTesting    TechCategory = "testing"
)

// TechCategories lists technology categories in display order.
var TechCategories = []TechCategory{TechFrontend, TechBackend, TechDatabase, TechDeployment, TechTesting}

// Gate carries the backend/database requirements shared by features and technologies.
type Gate struct {
	RequiresBackend  bool `json:"requiresBackend,omitempty"`
	RequiresDatabase bool `json:"requiresDatabase,omitempty"`
}

// Allows reports whether cfg satisfies the gate.
func (g Gate) Allows(cfg project.Config) bool {
	if g.RequiresBackend && !cfg.NeedsBackend {
		return false
	}
	if g.RequiresDatabase && !cfg.NeedsDatabase {
		return false
	}
	return true
}

// Feature is a catalog feature that can be added to a project with one click.
type Feature struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    FeatureCategory `json:"category"`
	IsDefault   bool            `json:"isDefault,omitempty"`
	Gate
}

// TechItem is a recommended technology.
type TechItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    TechCategory `json:"category"`
	IsDefault   bool         `json:"isDefault,omitempty"`
	Gate
}

// Segment is one structural part of a project (frontend, backend, database).
type Segment struct {
	Description         string   `json:"description"`
	Required            bool     `json:"required"`
	DefaultTechnologies []string `json:"defaultTechnologies"`
}

// Deployment lists the hosting targets suggested for an archetype.
type Deployment struct {
	Description string   `json:"description"`
	Platforms   []string `json:"platforms"`
}

// Structure is the set of segments an archetype is made of. Nil segments are absent.
type Structure struct {
	Frontend   *Segment    `json:"frontend,omitempty"`
	Backend    *Segment    `json:"backend,omitempty"`
	Database   *Segment    `json:"database,omitempty"`
	Deployment *Deployment `json:"deployment,omitempty"`
}

// Blueprint is the static descriptor of a project archetype.
type Blueprint struct {
	Type                 project.Type `json:"type"`
	Label                string       `json:"label"`
	Description          string       `json:"description"`
	Icon                 string       `json:"icon"`
	Structure            Structure    `json:"structure"`
	DefaultFeatures      []Feature    `json:"defaultFeatures"`
	SuggestedFeatures    []Feature    `json:"suggestedFeatures"`
	RecommendedTechStack []TechItem   `json:"recommendedTechStack"`
}

// Get returns the blueprint for t. Unknown types fall back to the static blueprint.
func Get(t project.Type) Blueprint {
	bp, ok := catalog[t]
	if !ok {
		bp = catalog[project.Static]
	}
	return bp.clone()
}

// All returns every blueprint in project type order.
func All() []Blueprint {
	out := make([]Blueprint, 0, len(catalog))
	for _, t := range project.Types() {
		out = append(out, Get(t))
	}
	return out
}

// clone deep-copies bp so callers cannot edit the compiled-in catalog.
func (bp Blueprint) clone() Blueprint {
	bp.Structure = bp.Structure.clone()
	bp.DefaultFeatures = append([]Feature(nil), bp.DefaultFeatures...)
	bp.SuggestedFeatures = append([]Feature(nil), bp.SuggestedFeatures...)
	bp.RecommendedTechStack = append([]TechItem(nil), bp.RecommendedTechStack...)
	return bp
}

func (s Structure) clone() Structure {
	s.Frontend = s.Frontend.clone()
	s.Backend = s.Backend.clone()
	s.Database = s.Database.clone()
	if s.Deployment != nil {
		d := *s.Deployment
		d.Platforms = append([]string(nil), d.Platforms...)
		s.Deployment = &d
	}
	return s
}

func (seg *Segment) clone() *Segment {
	if seg == nil {
		return nil
	}
	c := *seg
	c.DefaultTechnologies = append([]string(nil), c.DefaultTechnologies...)
	return &c
}

// DeriveConfig computes the configuration implied by selecting t. The
// authentication choice is carried over from prev.
func DeriveConfig(t project.Type, prev project.Config) project.Config {
	s := Get(t).Structure
	return project.Config{
		Type:                t,
		NeedsBackend:        s.Backend != nil,
		NeedsDatabase:       s.Database != nil && s.Database.Required,
		NeedsAuthentication: prev.NeedsAuthentication,
	}
}

// Toggles describes which configuration switches an archetype exposes.
type Toggles struct {
	Backend        bool `json:"backend"`
	Database       bool `json:"database"`
	Authentication bool `json:"authentication"`
}

// TogglesFor returns the switches offered for t. Mandatory segments have no toggle.
func TogglesFor(t project.Type) Toggles {
	s := Get(t).Structure
	return Toggles{
		Backend:        s.Backend != nil && !s.Backend.Required,
		Database:       s.Database != nil && !s.Database.Required,
		Authentication: t != project.Static && t != project.Backend,
	}
}

// Any reports whether at least one switch is offered.
func (t Toggles) Any() bool {
	return t.Backend || t.Database || t.Authentication
}
