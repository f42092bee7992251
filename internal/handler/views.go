package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/joestump/devguide/internal/blueprint"
	"github.com/joestump/devguide/internal/guideline"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/prompt"
	"github.com/joestump/devguide/internal/story"
	"github.com/joestump/devguide/internal/wizard"
)

type stepLink struct {
	Step   wizard.Step
	Title  string
	Number int
	Active bool
	Done   bool
}

// wizardPage is the layout data shared by every step.
type wizardPage struct {
	BasePage
	Step  wizard.Step
	Steps []stepLink
	State *wizard.State
	Prev  wizard.Step
	Next  wizard.Step
	First bool
	Last  bool
}

func newWizardPage(r *http.Request, st *wizard.State) wizardPage {
	cur := st.Step
	p := wizardPage{
		BasePage: BasePage{Theme: themeFromRequest(r), Title: cur.Title()},
		Step:     cur,
		State:    st,
		Prev:     cur.Prev(),
		Next:     cur.Next(),
		First:    cur.Prev() == cur,
		Last:     cur.Next() == cur,
	}
	for i, s := range wizard.Steps() {
		p.Steps = append(p.Steps, stepLink{
			Step:   s,
			Title:  s.Title(),
			Number: i + 1,
			Active: s == cur,
			Done:   i < cur.Index(),
		})
	}
	return p
}

// typeCard is one selectable project type.
type typeCard struct {
	blueprint.Blueprint
	Selected bool
}

type typeView struct {
	wizardPage
	Cards   []typeCard
	Config  project.Config
	Toggles blueprint.Toggles
	Error   string
}

func newTypeView(page wizardPage) typeView {
	st := page.State
	v := typeView{
		wizardPage: page,
		Config:     st.Config,
		Toggles:    st.Toggles(),
	}
	for _, bp := range blueprint.All() {
		v.Cards = append(v.Cards, typeCard{Blueprint: bp, Selected: bp.Type == st.Config.Type})
	}
	return v
}

type itemView struct {
	Index int
	Value string
}

type presetView struct {
	Name        string
	Description string
	Added       bool
}

type presetGroup struct {
	Category string
	Items    []presetView
}

// collectionView is one editable list on the details step.
type collectionView struct {
	Collection project.Collection
	Slug       string
	Title      string
	Multiline  bool
	Items      []itemView
	Presets    []presetGroup
	Error      string
}

var collectionTitles = map[project.Collection]string{
	project.Features:    "Core Features",
	project.TechStack:   "Tech Stack",
	project.UserStories: "User Stories",
}

func newCollectionView(st *wizard.State, c project.Collection) collectionView {
	items := st.Details.Items(c)
	v := collectionView{
		Collection: c,
		Slug:       c.Slug(),
		Title:      collectionTitles[c],
		Multiline:  c == project.UserStories,
	}
	for i, it := range items {
		v.Items = append(v.Items, itemView{Index: i, Value: it})
	}

	bp := st.Blueprint()
	switch c {
	case project.Features:
		for _, g := range blueprint.AvailableFeatures(bp, st.Config) {
			pg := presetGroup{Category: string(g.Category)}
			for _, f := range g.Items {
				pg.Items = append(pg.Items, presetView{Name: f.Name, Description: f.Description, Added: slices.Contains(items, f.Name)})
			}
			v.Presets = append(v.Presets, pg)
		}
	case project.TechStack:
		for _, g := range blueprint.AvailableTech(bp, st.Config) {
			pg := presetGroup{Category: string(g.Category)}
			for _, t := range g.Items {
				pg.Items = append(pg.Items, presetView{Name: t.Name, Description: t.Description, Added: slices.Contains(items, t.Name)})
			}
			v.Presets = append(v.Presets, pg)
		}
	}
	return v
}

type detailsView struct {
	wizardPage
	Name           string
	Description    string
	Collections    []collectionView
	StoriesRequest string
}

func newDetailsView(page wizardPage) detailsView {
	st := page.State
	v := detailsView{
		wizardPage:     page,
		Name:           st.Details.Name,
		Description:    st.Details.Description,
		StoriesRequest: prompt.UserStoriesRequest(st.Details.Name, st.Details.Features),
	}
	for _, c := range []project.Collection{project.Features, project.TechStack, project.UserStories} {
		v.Collections = append(v.Collections, newCollectionView(st, c))
	}
	return v
}

type storyOption struct {
	Index    int
	Label    string
	Selected bool
}

// storyPanel is the story-driven half of the prompts step.
type storyPanel struct {
	Stories   []storyOption
	Selected  *story.UserStory
	Index     int
	Phases    []wizard.RenderedPhase
	AIEnabled bool
}

func newStoryPanel(st *wizard.State, prompts wizard.Prompts, aiEnabled bool) storyPanel {
	p := storyPanel{
		Selected:  st.SelectedUserStory(),
		Index:     st.SelectedStory,
		Phases:    prompts.Story,
		AIEnabled: aiEnabled,
	}
	for _, s := range st.Stories() {
		p.Stories = append(p.Stories, storyOption{
			Index:    s.Index,
			Label:    story.Summary(s.Story),
			Selected: s.Index == st.SelectedStory,
		})
	}
	return p
}

type promptsView struct {
	wizardPage
	Header     string
	Guide      []wizard.RenderedPhase
	Stories    storyPanel
	Guidelines []guideline.Guideline
	AIEnabled  bool
}

type storyEditor struct {
	Index       int
	Title       string
	Description string
	Criteria    string
	Error       string
}

func newStoryEditor(i int, s story.UserStory) storyEditor {
	return storyEditor{
		Index:       i,
		Title:       s.Title,
		Description: s.Description,
		Criteria:    strings.Join(s.AcceptanceCriteria, "\n"),
	}
}

type aiResult struct {
	Phase   string
	Content string
	Error   string
}
