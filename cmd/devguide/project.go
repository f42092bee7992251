package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/joestump/devguide/internal/blueprint"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/wizard"
)

// loadProject reads a project file (YAML, JSON or TOML, by extension):
//
//	type: fullstack
//	backend: true          # optional, defaults to what the type implies
//	database: true         # optional
//	authentication: false
//	name: Linkshelf
//	description: Team bookmarks
//	features: [Save links, Tags]       # defaults to the type's presets
//	techStack: [Go, PostgreSQL]        # defaults to the type's presets
//	userStories:
//	  - |
//	    Save a link
//	    As a user I want to keep links.
//
//	    Acceptance Criteria:
//	    - Link is stored
func loadProject(path string) (*wizard.State, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	return projectFromViper(v)
}

func projectFromViper(v *viper.Viper) (*wizard.State, error) {
	t, err := project.ParseType(v.GetString("type"))
	if err != nil {
		return nil, err
	}
	o := wizard.Overrides{Authentication: v.GetBool("authentication")}
	if v.IsSet("backend") {
		b := v.GetBool("backend")
		o.Backend = &b
	}
	if v.IsSet("database") {
		b := v.GetBool("database")
		o.Database = &b
	}
	cfg, err := wizard.ResolveConfig(t, o)
	if err != nil {
		return nil, err
	}

	bp := blueprint.Get(t)
	d := project.Details{
		Name:        v.GetString("name"),
		Description: v.GetString("description"),
		Features:    v.GetStringSlice("features"),
		TechStack:   v.GetStringSlice("techStack"),
		UserStories: v.GetStringSlice("userStories"),
	}
	if !v.IsSet("features") {
		d.Features = blueprint.DefaultFeatureNames(bp, cfg)
	}
	if !v.IsSet("techStack") {
		d.TechStack = blueprint.DefaultTechNames(bp, cfg)
	}

	return &wizard.State{
		Step:          wizard.StepPrompts,
		Config:        cfg,
		Details:       d,
		SelectedStory: -1,
	}, nil
}
