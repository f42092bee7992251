// Package project holds the wizard's data model: the project archetype, the
// configuration flags derived from it, and the free-text project details.
package project

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a string does not name a project type.
var ErrUnknownType = errors.New("unknown project type")

// Type identifies a project archetype.
type Type string

const (
	Static    Type = "static"
	Fullstack Type = "fullstack"
	Backend   Type = "backend"
	Mobile    Type = "mobile"
)

var allTypes = []Type{Static, Fullstack, Backend, Mobile}

// Types returns every project type in catalog order.
func Types() []Type {
	return append([]Type(nil), allTypes...)
}

// ParseType converts a tag such as "fullstack" into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known archetypes.
func (t Type) Valid() bool {
	switch t {
	case Static, Fullstack, Backend, Mobile:
		return true
	default:
		return false
	}
}

func (t Type) String() string { return string(t) }

// Config is the project configuration chosen on the first wizard step.
// NeedsDatabase without NeedsBackend is representable; the wizard refuses it.
type Config struct {
	Type                Type `json:"type"`
	NeedsBackend        bool `json:"needsBackend"`
	NeedsDatabase       bool `json:"needsDatabase"`
	NeedsAuthentication bool `json:"needsAuthentication"`
}

// Details is the free-text description of the project.
type Details struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	TechStack   []string `json:"techStack"`
	UserStories []string `json:"userStories"`
}

// IsPlaceholder reports whether s is an unfilled input row.
func IsPlaceholder(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Filled returns items without placeholder rows, preserving order.
func Filled(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !IsPlaceholder(it) {
			out = append(out, it)
		}
	}
	return out
}

// Union concatenates the lists, dropping placeholders and exact duplicates.
// The first occurrence of each entry wins.
func Union(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, list := range lists {
		for _, it := range list {
			if IsPlaceholder(it) || seen[it] {
				continue
			}
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
