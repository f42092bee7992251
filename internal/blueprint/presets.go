package blueprint

import "github.com/joestump/devguide/internal/project"

// FeatureGroup is one category of the feature preset picker.
type FeatureGroup struct {
	Category FeatureCategory `json:"category"`
	Items    []Feature       `json:"items"`
}

// TechGroup is one category of the tech stack preset picker.
type TechGroup struct {
	Category TechCategory `json:"category"`
	Items    []TechItem   `json:"items"`
}

// Features returns default and suggested features in catalog order.
func (bp Blueprint) Features() []Feature {
	out := make([]Feature, 0, len(bp.DefaultFeatures)+len(bp.SuggestedFeatures))
	out = append(out, bp.DefaultFeatures...)
	return append(out, bp.SuggestedFeatures...)
}

// AvailableFeatures filters the blueprint's features by cfg and groups them by
// category. Categories with nothing to offer are omitted.
func AvailableFeatures(bp Blueprint, cfg project.Config) []FeatureGroup {
	var groups []FeatureGroup
	all := bp.Features()
	for _, cat := range FeatureCategories {
		var items []Feature
		for _, f := range all {
			if f.Category == cat && f.Allows(cfg) {
				items = append(items, f)
			}
		}
		if len(items) > 0 {
			groups = append(groups, FeatureGroup{Category: cat, Items: items})
		}
	}
	return groups
}

// AvailableTech filters the recommended tech stack by cfg and groups it by category.
func AvailableTech(bp Blueprint, cfg project.Config) []TechGroup {
	var groups []TechGroup
	for _, cat := range TechCategories {
		var items []TechItem
		for _, t := range bp.RecommendedTechStack {
			if t.Category == cat && t.Allows(cfg) {
				items = append(items, t)
			}
		}
		if len(items) > 0 {
			groups = append(groups, TechGroup{Category: cat, Items: items})
		}
	}
	return groups
}

// DefaultFeatureNames returns the names of default features that cfg allows.
func DefaultFeatureNames(bp Blueprint, cfg project.Config) []string {
	names := []string{}
	for _, f := range bp.DefaultFeatures {
		if f.IsDefault && f.Allows(cfg) {
			names = append(names, f.Name)
		}
	}
	return names
}

// DefaultTechNames returns the names of default technologies that cfg allows.
func DefaultTechNames(bp Blueprint, cfg project.Config) []string {
	names := []string{}
	for _, t := range bp.RecommendedTechStack {
		if t.IsDefault && t.Allows(cfg) {
			names = append(names, t.Name)
		}
	}
	return names
}

// Defaults returns the default entries for the given collection. User stories
// have no catalog defaults.
func Defaults(bp Blueprint, cfg project.Config, c project.Collection) []string {
	switch c {
	case project.Features:
		return DefaultFeatureNames(bp, cfg)
	case project.TechStack:
		return DefaultTechNames(bp, cfg)
	default:
		return []string{}
	}
}
