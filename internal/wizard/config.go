package wizard

import (
	"fmt"

	"github.com/joestump/devguide/internal/blueprint"
	"github.com/joestump/devguide/internal/project"
)

// Overrides are explicit configuration choices made outside the wizard, by
// API clients or CLI flags. A nil pointer keeps what the type implies.
type Overrides struct {
	Backend        *bool
	Database       *bool
	Authentication bool
}

// ResolveConfig derives the configuration for t and applies o with the same
// rules as the configuration step: fixed segments cannot be changed and a
// database needs a backend.
func ResolveConfig(t project.Type, o Overrides) (project.Config, error) {
	if !t.Valid() {
		return project.Config{}, fmt.Errorf("%w: %q", project.ErrUnknownType, string(t))
	}
	toggles := blueprint.TogglesFor(t)
	if o.Authentication && !toggles.Authentication {
		return project.Config{}, fmt.Errorf("authentication: %w", ErrToggleUnavailable)
	}
	cfg := blueprint.DeriveConfig(t, project.Config{NeedsAuthentication: o.Authentication})

	if o.Backend != nil && *o.Backend != cfg.NeedsBackend {
		if !toggles.Backend {
			return project.Config{}, fmt.Errorf("backend: %w", ErrToggleUnavailable)
		}
		cfg.NeedsBackend = *o.Backend
		if !cfg.NeedsBackend {
			cfg.NeedsDatabase = false
		}
	}
	if o.Database != nil && *o.Database != cfg.NeedsDatabase {
		if !toggles.Database {
			return project.Config{}, fmt.Errorf("database: %w", ErrToggleUnavailable)
		}
		if *o.Database && !cfg.NeedsBackend {
			return project.Config{}, ErrDatabaseWithoutBackend
		}
		cfg.NeedsDatabase = *o.Database
	}
	return cfg, nil
}
