package project

import "fmt"

// Collection names one of the three open-ended lists in Details.
type Collection string

const (
	Features    Collection = "features"
	TechStack   Collection = "techStack"
	UserStories Collection = "userStories"
)

// ParseCollection accepts the canonical names plus the kebab-case forms used in URLs.
func ParseCollection(s string) (Collection, error) {
	switch s {
	case "features":
		return Features, nil
	case "techStack", "tech-stack":
		return TechStack, nil
	case "userStories", "user-stories":
		return UserStories, nil
	default:
		return "", fmt.Errorf("unknown collection %q", s)
	}
}

// Slug is the URL form of the collection name.
func (c Collection) Slug() string {
	switch c {
	case TechStack:
		return "tech-stack"
	case UserStories:
		return "user-stories"
	default:
		return string(c)
	}
}

// Items returns the list addressed by c.
func (d *Details) Items(c Collection) []string {
	switch c {
	case Features:
		return d.Features
	case TechStack:
		return d.TechStack
	case UserStories:
		return d.UserStories
	default:
		panic(fmt.Sprintf("project: unhandled collection %q", c))
	}
}

// SetItems replaces the list addressed by c.
func (d *Details) SetItems(c Collection, items []string) {
	switch c {
	case Features:
		d.Features = items
	case TechStack:
		d.TechStack = items
	case UserStories:
		d.UserStories = items
	default:
		panic(fmt.Sprintf("project: unhandled collection %q", c))
	}
}
