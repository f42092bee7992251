package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/devguide/internal/project"
)

func titles(phases []Phase) []string {
	out := make([]string, len(phases))
	for i, p := range phases {
		out[i] = p.Title
	}
	return out
}

func TestFilter_StaticSkipsBackendPhases(t *testing.T) {
	cfg := project.Config{Type: project.Static}
	got := Filter(StoryPhases(), cfg)
	assert.Equal(t, []string{"Project Definition", "UI Implementation", "Testing", "Deployment"}, titles(got))
}

func TestFilter_BackendSkipsUIPhase(t *testing.T) {
	cfg := project.Config{Type: project.Backend, NeedsBackend: true, NeedsDatabase: true}
	got := Filter(StoryPhases(), cfg)
	assert.Equal(t, []string{"Project Definition", "Backend Implementation", "Database Design", "Testing", "Deployment"}, titles(got))
}

func TestFilter_FullstackGetsEverything(t *testing.T) {
	cfg := project.Config{Type: project.Fullstack, NeedsBackend: true, NeedsDatabase: true}
	assert.Len(t, Filter(StoryPhases(), cfg), 6)
}

func TestFilter_PreservesOrder(t *testing.T) {
	cfg := project.Config{Type: project.Mobile, NeedsBackend: true}
	all := StoryPhases()
	got := Filter(all, cfg)

	idx := 0
	for _, p := range all {
		if idx < len(got) && got[idx].ID == p.ID {
			idx++
		}
	}
	assert.Equal(t, len(got), idx, "filtered phases must be a subsequence of the input")
}

func TestFilter_EmptyResult(t *testing.T) {
	phases := []Phase{{Title: "Only Backend", RequiresBackend: true}}
	got := Filter(phases, project.Config{Type: project.Static})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplies(t *testing.T) {
	ui := Phase{Title: "UI", ApplicableTo: []project.Type{project.Static, project.Mobile}}
	assert.True(t, Applies(ui, project.Config{Type: project.Mobile}))
	assert.False(t, Applies(ui, project.Config{Type: project.Backend, NeedsBackend: true}))

	open := Phase{Title: "Open"}
	for _, typ := range project.Types() {
		assert.True(t, Applies(open, project.Config{Type: typ}), typ)
	}
}

func TestGuidePhases_BackendGate(t *testing.T) {
	got := Filter(GuidePhases(), project.Config{Type: project.Static})
	assert.NotContains(t, titles(got), "Backend Development")
	assert.Len(t, got, 4)

	got = Filter(GuidePhases(), project.Config{Type: project.Fullstack, NeedsBackend: true})
	assert.Len(t, got, 5)
}

func TestGuidePhases_SubPhases(t *testing.T) {
	for _, p := range GuidePhases() {
		assert.Len(t, p.SubPhases, 3, p.Title)
		assert.Empty(t, p.Prompt, p.Title)
		for _, s := range p.SubPhases {
			assert.NotEmpty(t, s.Prompt, s.Title)
			assert.NoError(t, ValidateSlug(s.ID), s.Title)
		}
	}
}

func TestCatalogIDs(t *testing.T) {
	for _, c := range []Catalog{StoryCatalog, GuideCatalog} {
		seen := map[string]bool{}
		for _, p := range c.Phases() {
			require.NoError(t, ValidateSlug(p.ID), p.Title)
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}
	}

	p, ok := Find(GuidePhases(), "testing-deployment")
	require.True(t, ok)
	sub, ok := p.FindSub("deployment-setup")
	require.True(t, ok)
	assert.Equal(t, "Deployment Setup", sub.Title)

	_, ok = Find(StoryPhases(), "nope")
	assert.False(t, ok)
}

func TestPhasesReturnCopies(t *testing.T) {
	a := StoryPhases()
	a[0].Title = "mutated"
	a[0].ApplicableTo[0] = project.Backend
	b := StoryPhases()
	assert.Equal(t, "Project Definition", b[0].Title)
	assert.Equal(t, project.Static, b[0].ApplicableTo[0])
}

func TestParseCatalog(t *testing.T) {
	c, ok := ParseCatalog("")
	assert.True(t, ok)
	assert.Equal(t, StoryCatalog, c)

	c, ok = ParseCatalog("guide")
	assert.True(t, ok)
	assert.Equal(t, GuideCatalog, c)

	_, ok = ParseCatalog("other")
	assert.False(t, ok)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Project Definition", "project-definition"},
		{"Testing & Deployment", "testing-deployment"},
		{"UI/UX Design", "ui-ux-design"},
		{"  Debugging & Optimization  ", "debugging-optimization"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		{name: "simple word", slug: "testing", wantErr: nil},
		{name: "with hyphens", slug: "ui-implementation", wantErr: nil},
		{name: "digits", slug: "phase-2", wantErr: nil},
		{name: "empty", slug: "", wantErr: ErrSlugEmpty},
		{name: "uppercase", slug: "Testing", wantErr: ErrSlugFormat},
		{name: "leading hyphen", slug: "-x", wantErr: ErrSlugFormat},
		{name: "trailing hyphen", slug: "x-", wantErr: ErrSlugFormat},
		{name: "slash", slug: "a/b", wantErr: ErrSlugFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
