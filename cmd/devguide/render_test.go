package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/wizard"
)

func projectFromYAML(t *testing.T, src string) (*wizard.State, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(src)))
	return projectFromViper(v)
}

const linkshelf = `
type: fullstack
name: Linkshelf
description: Team bookmarks
authentication: true
techStack: [Go, PostgreSQL]
userStories:
  - |
    Save a link
    As a user I want to keep links.

    Acceptance Criteria:
    - Link is stored
    - Duplicate links are rejected
`

func TestProjectFromViper(t *testing.T) {
	st, err := projectFromYAML(t, linkshelf)
	require.NoError(t, err)

	assert.Equal(t, project.Config{
		Type:                project.Fullstack,
		NeedsBackend:        true,
		NeedsDatabase:       true,
		NeedsAuthentication: true,
	}, st.Config)
	assert.Equal(t, wizard.StepPrompts, st.Step)
	assert.Equal(t, -1, st.SelectedStory)
	assert.Equal(t, "Linkshelf", st.Details.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, st.Details.TechStack)
	// Unset collections fall back to the type's presets.
	assert.Equal(t, []string{"User Authentication", "CRUD Operations"}, st.Details.Features)
	require.Len(t, st.Details.UserStories, 1)
}

func TestProjectFromViper_Overrides(t *testing.T) {
	t.Run("mobile without backend drops gated defaults", func(t *testing.T) {
		st, err := projectFromYAML(t, "type: mobile\nbackend: false\n")
		require.NoError(t, err)
		assert.False(t, st.Config.NeedsBackend)
		assert.False(t, st.Config.NeedsDatabase)
		assert.Equal(t, []string{"Offline Support"}, st.Details.Features)
	})

	t.Run("static cannot take a backend", func(t *testing.T) {
		_, err := projectFromYAML(t, "type: static\nbackend: true\n")
		assert.ErrorIs(t, err, wizard.ErrToggleUnavailable)
	})

	t.Run("static cannot require authentication", func(t *testing.T) {
		_, err := projectFromYAML(t, "type: static\nauthentication: true\n")
		assert.ErrorIs(t, err, wizard.ErrToggleUnavailable)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := projectFromYAML(t, "type: desktop\n")
		assert.ErrorIs(t, err, project.ErrUnknownType)
	})
}

func TestRenderPrompt(t *testing.T) {
	base := renderOptions{catalog: string(phase.StoryCatalog), story: -1}

	t.Run("story phase with selected story", func(t *testing.T) {
		st, err := projectFromYAML(t, linkshelf)
		require.NoError(t, err)
		opts := base
		opts.phase = "ui-implementation"
		opts.story = 0

		text, err := renderPrompt(st, opts)
		require.NoError(t, err)
		assert.Contains(t, text, "Save a link\nAs a user I want to keep links.")
		assert.Contains(t, text, "- Link is stored\n- Duplicate links are rejected")
		assert.Contains(t, text, "Project Type: fullstack")
		assert.NotContains(t, text, "[SELECTED_STORY]")
	})

	t.Run("header on request", func(t *testing.T) {
		st, err := projectFromYAML(t, linkshelf)
		require.NoError(t, err)
		opts := base
		opts.phase = "testing"
		opts.header = true

		text, err := renderPrompt(st, opts)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "Project Type: FULLSTACK\nAuthentication Required\nDatabase Required\n\n"), text)
	})

	t.Run("guide phase carries the header", func(t *testing.T) {
		st, err := projectFromYAML(t, "type: static\nname: Folio\n")
		require.NoError(t, err)
		opts := base
		opts.catalog = string(phase.GuideCatalog)
		opts.phase = "project-definition"

		text, err := renderPrompt(st, opts)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "Project Type: STATIC\n\n"), text)
	})

	t.Run("inapplicable phase", func(t *testing.T) {
		st, err := projectFromYAML(t, "type: static\n")
		require.NoError(t, err)
		opts := base
		opts.phase = "backend-implementation"

		_, err = renderPrompt(st, opts)
		assert.ErrorContains(t, err, "does not apply")
	})

	t.Run("story out of range", func(t *testing.T) {
		st, err := projectFromYAML(t, linkshelf)
		require.NoError(t, err)
		opts := base
		opts.phase = "ui-implementation"
		opts.story = 3

		_, err = renderPrompt(st, opts)
		assert.ErrorIs(t, err, wizard.ErrStoryIndex)
	})

	t.Run("unknown catalog", func(t *testing.T) {
		st, err := projectFromYAML(t, linkshelf)
		require.NoError(t, err)
		opts := base
		opts.catalog = "recipes"
		opts.phase = "testing"

		_, err = renderPrompt(st, opts)
		assert.Error(t, err)
	})
}

func TestPrintPhases(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printPhases(&buf, phase.Filter(phase.StoryPhases(), project.Config{Type: project.Static}))
	out := buf.String()
	assert.Contains(t, out, "1. Project Definition [project-definition]")
	assert.NotContains(t, out, "backend-implementation")

	buf.Reset()
	printPhases(&buf, nil)
	assert.Equal(t, "No applicable phases.\n", buf.String())
}

func TestSplitStories(t *testing.T) {
	got := splitStories("First\nbody\n---\n\n---\r\nSecond\n")
	assert.Equal(t, []string{"First\nbody", "Second"}, got)
	// An empty answer leaves one placeholder row, like a fresh wizard.
	assert.Equal(t, []string{""}, splitStories("  \n"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "HTMX"}, splitList(" Go, ,HTMX ,"))
	assert.Nil(t, splitList(""))
}
