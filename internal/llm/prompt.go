package llm

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed system.tmpl
var defaultSystemTemplate string

// SystemData holds the variables available in the system prompt template.
type SystemData struct {
	ProjectName string
	ProjectType string
	Description string
}

// SystemPrompt executes the system prompt template with data.
// If customTemplate is non-empty it is used instead of the embedded default.
func SystemPrompt(customTemplate string, data SystemData) (string, error) {
	src := defaultSystemTemplate
	if customTemplate != "" {
		src = customTemplate
	}

	tmpl, err := template.New("system").Parse(src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
