// Package prompt renders phase templates against the current project.
package prompt

import (
	"strings"

	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/story"
)

// Tokens recognized by Format. Any other bracketed marker is left as is.
const (
	TokenProjectName        = "[PROJECT_NAME]"
	TokenProjectDescription = "[PROJECT_DESCRIPTION]"
	TokenFeatures           = "[FEATURES]"
	TokenTechStack          = "[TECH_STACK]"
	TokenUserStories        = "[USER_STORIES]"
	TokenProjectType        = "[PROJECT_TYPE]"
	TokenSelectedStory      = "[SELECTED_STORY]"
	TokenAcceptanceCriteria = "[ACCEPTANCE_CRITERIA]"
)

// Format substitutes every known token in tmpl. Replacement is a single
// pass, so text inserted for one token is never scanned for another.
//
// List collections are joined with "\n- ", leaving the first item without a
// dash; templates that want a bulleted list start it with "- " themselves.
// [PROJECT_TYPE] is always the lowercase tag. selected may be nil.
func Format(tmpl string, d project.Details, cfg project.Config, selected *story.UserStory) string {
	var storyText, criteria string
	if selected != nil {
		storyText = selected.Title + "\n" + selected.Description
		lines := make([]string, len(selected.AcceptanceCriteria))
		for i, c := range selected.AcceptanceCriteria {
			lines[i] = "- " + c
		}
		criteria = strings.Join(lines, "\n")
	}

	r := strings.NewReplacer(
		TokenProjectName, d.Name,
		TokenProjectDescription, d.Description,
		TokenFeatures, strings.Join(d.Features, "\n- "),
		TokenTechStack, strings.Join(d.TechStack, "\n- "),
		TokenUserStories, strings.Join(d.UserStories, "\n\n"),
		TokenProjectType, cfg.Type.String(),
		TokenSelectedStory, storyText,
		TokenAcceptanceCriteria, criteria,
	)
	return r.Replace(tmpl)
}

// Header is the context block WithHeader prepends.
func Header(cfg project.Config) string {
	var b strings.Builder
	b.WriteString("Project Type: ")
	b.WriteString(strings.ToUpper(cfg.Type.String()))
	b.WriteString("\n")
	if cfg.NeedsAuthentication {
		b.WriteString("Authentication Required\n")
	}
	if cfg.NeedsDatabase {
		b.WriteString("Database Required\n")
	}
	b.WriteString("\n")
	return b.String()
}

// WithHeader prefixes an already formatted body with the project context
// header used by the development guide.
func WithHeader(cfg project.Config, body string) string {
	return Header(cfg) + body
}

// Options control Render.
type Options struct {
	Header bool
}

// Render formats tmpl and optionally wraps it with the context header.
func Render(tmpl string, d project.Details, cfg project.Config, selected *story.UserStory, opts Options) string {
	body := Format(tmpl, d, cfg, selected)
	if opts.Header {
		return WithHeader(cfg, body)
	}
	return body
}

// UserStoriesRequest builds the prompt that asks an assistant to draft user
// stories for the given features. Placeholder features are skipped.
func UserStoriesRequest(name string, features []string) string {
	if name == "" {
		name = "[Project Name]"
	}
	var list []string
	for _, f := range features {
		if f != "" {
			list = append(list, "- "+f)
		}
	}
	return "Help me create detailed user stories for " + name + ". Consider these core features:\n" +
		strings.Join(list, "\n") + `

For each user story:
1. Format as "As a [user], I want to [action] so that [benefit]"
2. Include acceptance criteria in the format:
   Given [context]
   When [action]
   Then [expected result]
3. Consider edge cases and error scenarios`
}
