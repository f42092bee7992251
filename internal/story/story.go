// Package story converts between the free-text user story blocks kept in
// project details and their structured form.
//
// Parsing is a line-based heuristic. Callers that need stricter input should
// build a UserStory directly and serialize it with Format.
package story

import (
	"regexp"
	"strings"
)

// Marker introduces the acceptance criteria section of a story block.
const Marker = "Acceptance Criteria:"

var bullet = regexp.MustCompile(`^[-*]\s*`)

// UserStory is the parsed view of one story block.
type UserStory struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptanceCriteria"`
}

// Parse splits text into title, description and acceptance criteria.
//
// Blank lines are discarded. The first remaining line is the title. The first
// line containing "acceptance criteria:" (any case) ends the description and
// the bullets after it become criteria. A marker on the title line is
// ignored, in which case everything after the title is description.
func Parse(text string) UserStory {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	s := UserStory{AcceptanceCriteria: []string{}}
	if len(lines) == 0 {
		return s
	}
	s.Title = lines[0]

	acStart := -1
	for i, l := range lines {
		if strings.Contains(strings.ToLower(l), "acceptance criteria:") {
			acStart = i
			break
		}
	}

	if acStart > 0 {
		s.Description = strings.Join(lines[1:acStart], "\n")
		for _, l := range lines[acStart+1:] {
			s.AcceptanceCriteria = append(s.AcceptanceCriteria, strings.TrimSpace(bullet.ReplaceAllString(l, "")))
		}
		return s
	}
	s.Description = strings.Join(lines[1:], "\n")
	return s
}

// Criteria reads one criterion per line from free text, as typed into an
// editor. Bullets are stripped and blank lines skipped.
func Criteria(text string) []string {
	out := []string{}
	for _, l := range strings.Split(text, "\n") {
		c := strings.TrimSpace(bullet.ReplaceAllString(strings.TrimSpace(l), ""))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Format serializes s back into a story block. Parse(Format(s)) yields s as
// long as no field contains blank lines or the marker text.
func Format(s UserStory) string {
	var b strings.Builder
	b.WriteString(s.Title)
	b.WriteString("\n")
	b.WriteString(s.Description)
	b.WriteString("\n\n")
	b.WriteString(Marker)
	b.WriteString("\n")
	for i, c := range s.AcceptanceCriteria {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(c)
	}
	return b.String()
}

// Summary is the label used when listing stories.
func Summary(s UserStory) string {
	if t := strings.TrimSpace(s.Title); t != "" {
		return t
	}
	return "Untitled story"
}

// ParseAll parses every non-placeholder entry in texts, keeping the index of
// each entry in the original slice.
func ParseAll(texts []string) []Indexed {
	out := []Indexed{}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, Indexed{Index: i, Story: Parse(t)})
	}
	return out
}

// Indexed pairs a parsed story with its position in project details.
type Indexed struct {
	Index int       `json:"index"`
	Story UserStory `json:"story"`
}
