package phase

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrSlugEmpty is returned when a phase ID is empty.
	ErrSlugEmpty = errors.New("phase id must not be empty")

	// ErrSlugFormat is returned when a phase ID does not match the required pattern.
	ErrSlugFormat = errors.New("phase id must contain only lowercase alphanumeric characters and hyphens, and must not start or end with a hyphen")

	slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)
	nonSlugRun  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify turns a title such as "Testing & Deployment" into "testing-deployment".
func Slugify(title string) string {
	s := nonSlugRun.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// ValidateSlug checks that id is a well-formed phase ID.
func ValidateSlug(id string) error {
	if id == "" {
		return ErrSlugEmpty
	}
	if !slugPattern.MatchString(id) {
		return ErrSlugFormat
	}
	return nil
}
