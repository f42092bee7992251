package wizard

import (
	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/prompt"
)

// RenderedSub is a guide sub-phase with its prompt filled in.
type RenderedSub struct {
	phase.SubPhase
	Text string `json:"text"`
}

// RenderedPhase is an applicable phase with its prompt filled in. Guide
// phases carry their text on the sub-phases instead.
type RenderedPhase struct {
	phase.Phase
	Text string        `json:"text,omitempty"`
	Subs []RenderedSub `json:"subs,omitempty"`
}

// Prompts is the content of the prompts step.
type Prompts struct {
	Guide []RenderedPhase `json:"guide"`
	Story []RenderedPhase `json:"story"`
	// StoriesRequest asks an assistant to draft user stories for the features.
	StoriesRequest string `json:"storiesRequest"`
}

// Rendered filters both phase catalogs for st and renders every prompt.
// Guide prompts get the project context header; story prompts use the
// selected story when there is one.
func (s *Service) Rendered(st *State) Prompts {
	return Render(st)
}

// Render is Rendered without a Service.
func Render(st *State) Prompts {
	selected := st.SelectedUserStory()
	out := Prompts{
		Guide:          []RenderedPhase{},
		Story:          []RenderedPhase{},
		StoriesRequest: prompt.UserStoriesRequest(st.Details.Name, st.Details.Features),
	}
	for _, p := range phase.Filter(phase.GuidePhases(), st.Config) {
		rp := RenderedPhase{Phase: p}
		for _, sub := range p.SubPhases {
			text := prompt.Render(sub.Prompt, st.Details, st.Config, selected, prompt.Options{Header: true})
			rp.Subs = append(rp.Subs, RenderedSub{SubPhase: sub, Text: text})
		}
		out.Guide = append(out.Guide, rp)
	}
	for _, p := range phase.Filter(phase.StoryPhases(), st.Config) {
		out.Story = append(out.Story, RenderedPhase{
			Phase: p,
			Text:  prompt.Format(p.Prompt, st.Details, st.Config, selected),
		})
	}
	return out
}

// PromptFor renders a single phase, or one of its sub-phases when subID is
// set. It reports false when the phase does not exist or does not apply.
func PromptFor(st *State, cat phase.Catalog, phaseID, subID string) (string, bool) {
	p, ok := phase.Find(phase.Filter(cat.Phases(), st.Config), phaseID)
	if !ok {
		return "", false
	}
	selected := st.SelectedUserStory()
	if subID != "" || len(p.SubPhases) > 0 {
		if subID == "" {
			subID = p.SubPhases[0].ID
		}
		sub, ok := p.FindSub(subID)
		if !ok {
			return "", false
		}
		return prompt.Render(sub.Prompt, st.Details, st.Config, selected, prompt.Options{Header: true}), true
	}
	return prompt.Format(p.Prompt, st.Details, st.Config, selected), true
}
