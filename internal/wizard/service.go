package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/joestump/devguide/internal/blueprint"
	"github.com/joestump/devguide/internal/metrics"
	"github.com/joestump/devguide/internal/project"
)

// SnapshotStore keeps each project type's collections so switching types and
// back does not lose them. Load returns nil, nil when nothing is stored.
type SnapshotStore interface {
	Load(ctx context.Context, t project.Type) (*project.Snapshot, error)
	Save(ctx context.Context, t project.Type, snap project.Snapshot) error
}

// Service applies the wizard transitions that have side effects.
type Service struct {
	snapshots SnapshotStore
	logger    *log.Logger
}

// NewService returns a Service. snapshots may be nil, in which case type
// switches merge the previous entries into the new defaults instead.
func NewService(snapshots SnapshotStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{snapshots: snapshots, logger: logger}
}

// SelectType switches the project to t, re-deriving the configuration and
// reseeding the collections.
func (s *Service) SelectType(ctx context.Context, st *State, t project.Type) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", project.ErrUnknownType, string(t))
	}
	s.Persist(ctx, st)

	prev := st.Details
	cfg := blueprint.DeriveConfig(t, st.Config)
	bp := blueprint.Get(t)
	defFeatures := blueprint.Defaults(bp, cfg, project.Features)
	defTech := blueprint.Defaults(bp, cfg, project.TechStack)

	var features, tech, stories []string
	switch snap := s.load(ctx, t); {
	case snap != nil:
		features = project.Union(snap.Features, defFeatures)
		tech = project.Union(snap.TechStack, defTech)
		stories = project.Union(snap.UserStories)
	case s.snapshots != nil:
		features = defFeatures
		tech = defTech
		stories = project.Union(prev.UserStories)
	default:
		features = project.Union(defFeatures, prev.Features)
		tech = project.Union(defTech, prev.TechStack)
		stories = project.Union(prev.UserStories)
	}
	if len(stories) == 0 {
		stories = []string{""}
	}

	st.Config = cfg
	st.Details.Features = features
	st.Details.TechStack = tech
	st.Details.UserStories = stories
	st.SelectedStory = -1

	metrics.TypeSelectionsTotal.WithLabelValues(t.String()).Inc()
	s.logger.Debug("project type selected", "type", t, "features", len(features), "tech", len(tech))
	s.Persist(ctx, st)
	return nil
}

// Refresh merges any defaults newly allowed by the current configuration,
// typically after a toggle changed, and persists the result.
func (s *Service) Refresh(ctx context.Context, st *State) {
	bp := st.Blueprint()
	st.Details.Features = project.Union(st.Details.Features, blueprint.Defaults(bp, st.Config, project.Features))
	st.Details.TechStack = project.Union(st.Details.TechStack, blueprint.Defaults(bp, st.Config, project.TechStack))
	s.Persist(ctx, st)
}

// Persist saves the current collections under the current type. Failures
// are logged and counted, never returned.
func (s *Service) Persist(ctx context.Context, st *State) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, st.Config.Type, project.SnapshotOf(st.Details)); err != nil {
		metrics.SnapshotErrorsTotal.WithLabelValues("save").Inc()
		s.logger.Warn("saving project snapshot", "type", st.Config.Type, "err", err)
	}
}

// load returns the stored snapshot for t. Errors, including corrupt data,
// are treated as absent.
func (s *Service) load(ctx context.Context, t project.Type) *project.Snapshot {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Load(ctx, t)
	if err != nil {
		metrics.SnapshotErrorsTotal.WithLabelValues("load").Inc()
		s.logger.Warn("loading project snapshot, falling back to defaults", "type", t, "err", err)
		return nil
	}
	return snap
}

// Reset returns a fresh wizard state. Stored snapshots are dropped too when
// the store supports deletion, so the next type switch starts from defaults.
func (s *Service) Reset(ctx context.Context) *State {
	if d, ok := s.snapshots.(interface {
		Delete(ctx context.Context, t project.Type) error
	}); ok {
		for _, t := range project.Types() {
			if err := d.Delete(ctx, t); err != nil {
				metrics.SnapshotErrorsTotal.WithLabelValues("delete").Inc()
				s.logger.Warn("deleting project snapshot", "type", t, "err", err)
			}
		}
	}
	return New()
}
