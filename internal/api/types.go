package api

import (
	"github.com/joestump/devguide/internal/blueprint"
	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/story"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Catalog types ---

// BlueprintListResponse is the response for GET /api/v1/blueprints.
type BlueprintListResponse struct {
	Blueprints []blueprint.Blueprint `json:"blueprints"`
}

// BlueprintResponse is one blueprint plus the configuration selecting it implies.
type BlueprintResponse struct {
	blueprint.Blueprint
	DefaultConfig project.Config    `json:"defaultConfig"`
	Toggles       blueprint.Toggles `json:"toggles"`
}

// PhaseListResponse is the response for GET /api/v1/phases.
type PhaseListResponse struct {
	Catalog phase.Catalog  `json:"catalog"`
	Config  project.Config `json:"config"`
	Phases  []phase.Phase  `json:"phases"`
}

// --- Prompt types ---

// ProjectInput selects a project type. Backend and Database default to what
// the type implies and may only differ where the type offers a toggle.
type ProjectInput struct {
	Type           string `json:"type"`
	Backend        *bool  `json:"backend,omitempty"`
	Database       *bool  `json:"database,omitempty"`
	Authentication bool   `json:"authentication,omitempty"`
}

// RenderPromptRequest is the request body for POST /api/v1/prompts/render.
type RenderPromptRequest struct {
	Project ProjectInput    `json:"project"`
	Details project.Details `json:"details"`
	Catalog string          `json:"catalog,omitempty"`
	Phase   string          `json:"phase"`
	Sub     string          `json:"sub,omitempty"`
	// Story is an index into details.userStories.
	Story *int `json:"story,omitempty"`
}

// RenderPromptResponse carries a fully substituted prompt.
type RenderPromptResponse struct {
	Config project.Config `json:"config"`
	Phase  string         `json:"phase"`
	Sub    string         `json:"sub,omitempty"`
	Prompt string         `json:"prompt"`
}

// --- Story types ---

// StoryTextRequest is the request body for POST /api/v1/stories/parse.
type StoryTextRequest struct {
	Text string `json:"text"`
}

// StoryParseResponse is a parsed user story.
type StoryParseResponse struct {
	Story   story.UserStory `json:"story"`
	Summary string          `json:"summary"`
}

// StoryFormatResponse is the canonical text form of a user story.
type StoryFormatResponse struct {
	Text string `json:"text"`
}

// --- Completion types ---

// CompletionRequest is the request body for POST /api/v1/completions.
type CompletionRequest struct {
	Prompt      string `json:"prompt"`
	ProjectName string `json:"projectName,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Description string `json:"description,omitempty"`
}

// CompletionResponse is the assistant's answer.
type CompletionResponse struct {
	Content string `json:"content"`
}
