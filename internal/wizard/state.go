// Package wizard holds the three-step project wizard state and the rules for
// mutating it. Mutations on State are pure; Service adds persistence.
package wizard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/joestump/devguide/internal/blueprint"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/story"
)

var (
	// ErrDatabaseWithoutBackend is returned when a database is requested for a
	// project without a backend.
	ErrDatabaseWithoutBackend = errors.New("a database requires a backend")

	// ErrToggleUnavailable is returned when the project type does not offer the switch.
	ErrToggleUnavailable = errors.New("option is not available for this project type")

	// ErrStoryIndex is returned for a user story index that does not exist.
	ErrStoryIndex = errors.New("user story not found")

	// ErrItemIndex is returned for a collection index that does not exist.
	ErrItemIndex = errors.New("item not found")
)

// State is everything a single wizard session knows.
type State struct {
	Step          Step            `json:"step"`
	Config        project.Config  `json:"config"`
	Details       project.Details `json:"details"`
	SelectedStory int             `json:"selectedStory"`
}

// New returns a fresh wizard: a static site with its defaults seeded and one
// empty story row.
func New() *State {
	cfg := blueprint.DeriveConfig(project.Static, project.Config{})
	bp := blueprint.Get(project.Static)
	return &State{
		Step:   StepType,
		Config: cfg,
		Details: project.Details{
			Features:    blueprint.DefaultFeatureNames(bp, cfg),
			TechStack:   blueprint.DefaultTechNames(bp, cfg),
			UserStories: []string{""},
		},
		SelectedStory: -1,
	}
}

// Blueprint returns the blueprint for the current project type.
func (s *State) Blueprint() blueprint.Blueprint {
	return blueprint.Get(s.Config.Type)
}

// Toggles returns the switches the current project type offers.
func (s *State) Toggles() blueprint.Toggles {
	return blueprint.TogglesFor(s.Config.Type)
}

func (s *State) SetName(name string)               { s.Details.Name = name }
func (s *State) SetDescription(description string) { s.Details.Description = description }

// AddItem appends an empty row to c.
func (s *State) AddItem(c project.Collection) {
	s.Details.SetItems(c, append(s.Details.Items(c), ""))
}

// UpdateItem replaces row i of c.
func (s *State) UpdateItem(c project.Collection, i int, v string) error {
	items := s.Details.Items(c)
	if i < 0 || i >= len(items) {
		return fmt.Errorf("%w: %s[%d]", ErrItemIndex, c, i)
	}
	items = slices.Clone(items)
	items[i] = v
	s.Details.SetItems(c, items)
	return nil
}

// RemoveItem deletes row i of c. Removing a user story keeps the selection
// pointing at the same story, or clears it when that story is removed.
func (s *State) RemoveItem(c project.Collection, i int) error {
	items := s.Details.Items(c)
	if i < 0 || i >= len(items) {
		return fmt.Errorf("%w: %s[%d]", ErrItemIndex, c, i)
	}
	s.Details.SetItems(c, slices.Delete(slices.Clone(items), i, i+1))
	if c == project.UserStories {
		switch {
		case s.SelectedStory == i:
			s.SelectedStory = -1
		case s.SelectedStory > i:
			s.SelectedStory--
		}
	}
	return nil
}

// AddPreset appends name to c unless it is already there. Placeholder rows
// are dropped so a preset fills the list rather than trailing empty inputs.
// It reports whether the list changed.
func (s *State) AddPreset(c project.Collection, name string) bool {
	items := s.Details.Items(c)
	if project.IsPlaceholder(name) || slices.Contains(items, name) {
		return false
	}
	s.Details.SetItems(c, append(project.Filled(items), name))
	return true
}

// SetBackend switches the backend. Turning it off also drops the database.
func (s *State) SetBackend(on bool) error {
	if !s.Toggles().Backend {
		return ErrToggleUnavailable
	}
	s.Config.NeedsBackend = on
	if !on {
		s.Config.NeedsDatabase = false
	}
	return nil
}

// SetDatabase switches the database.
func (s *State) SetDatabase(on bool) error {
	if !s.Toggles().Database {
		return ErrToggleUnavailable
	}
	if on && !s.Config.NeedsBackend {
		return ErrDatabaseWithoutBackend
	}
	s.Config.NeedsDatabase = on
	return nil
}

// SetAuthentication switches authentication.
func (s *State) SetAuthentication(on bool) error {
	if !s.Toggles().Authentication {
		return ErrToggleUnavailable
	}
	s.Config.NeedsAuthentication = on
	return nil
}

// SelectStory marks story i as the one the story-driven prompts target.
// -1 clears the selection.
func (s *State) SelectStory(i int) error {
	if i == -1 {
		s.SelectedStory = -1
		return nil
	}
	if i < 0 || i >= len(s.Details.UserStories) || project.IsPlaceholder(s.Details.UserStories[i]) {
		return fmt.Errorf("%w: %d", ErrStoryIndex, i)
	}
	s.SelectedStory = i
	return nil
}

// SelectedUserStory returns the parsed selected story, or nil when none is
// selected.
func (s *State) SelectedUserStory() *story.UserStory {
	i := s.SelectedStory
	if i < 0 || i >= len(s.Details.UserStories) || project.IsPlaceholder(s.Details.UserStories[i]) {
		return nil
	}
	us := story.Parse(s.Details.UserStories[i])
	return &us
}

// SaveStory stores us at index i, or appends it when i is negative. It
// returns the index the story ended up at.
func (s *State) SaveStory(i int, us story.UserStory) (int, error) {
	text := story.Format(us)
	if i < 0 {
		s.Details.UserStories = append(project.Filled(s.Details.UserStories), text)
		s.SelectedStory = -1
		return len(s.Details.UserStories) - 1, nil
	}
	if err := s.UpdateItem(project.UserStories, i, text); err != nil {
		return 0, fmt.Errorf("%w: %d", ErrStoryIndex, i)
	}
	return i, nil
}

// Stories returns the parsed, non-placeholder user stories.
func (s *State) Stories() []story.Indexed {
	return story.ParseAll(s.Details.UserStories)
}
