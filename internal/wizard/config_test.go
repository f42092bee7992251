package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/devguide/internal/project"
)

func TestResolveConfig(t *testing.T) {
	yes, no := true, false

	cases := []struct {
		name string
		typ  project.Type
		o    Overrides
		want project.Config
		err  error
	}{
		{name: "static defaults", typ: project.Static, want: project.Config{Type: project.Static}},
		{name: "fullstack defaults", typ: project.Fullstack, want: project.Config{Type: project.Fullstack, NeedsBackend: true, NeedsDatabase: true}},
		{name: "mobile without backend", typ: project.Mobile, o: Overrides{Backend: &no}, want: project.Config{Type: project.Mobile}},
		{name: "mobile with database", typ: project.Mobile, o: Overrides{Database: &yes}, want: project.Config{Type: project.Mobile, NeedsBackend: true, NeedsDatabase: true}},
		{name: "same as implied is fine", typ: project.Fullstack, o: Overrides{Backend: &yes, Database: &yes}, want: project.Config{Type: project.Fullstack, NeedsBackend: true, NeedsDatabase: true}},
		{name: "authentication kept", typ: project.Mobile, o: Overrides{Authentication: true}, want: project.Config{Type: project.Mobile, NeedsBackend: true, NeedsAuthentication: true}},
		{name: "static authentication", typ: project.Static, o: Overrides{Authentication: true}, err: ErrToggleUnavailable},
		{name: "backend authentication", typ: project.Backend, o: Overrides{Authentication: true}, err: ErrToggleUnavailable},
		{name: "static backend", typ: project.Static, o: Overrides{Backend: &yes}, err: ErrToggleUnavailable},
		{name: "fullstack drops database", typ: project.Fullstack, o: Overrides{Database: &no}, err: ErrToggleUnavailable},
		{name: "database without backend", typ: project.Mobile, o: Overrides{Backend: &no, Database: &yes}, err: ErrDatabaseWithoutBackend},
		{name: "unknown type", typ: project.Type("desktop"), err: project.ErrUnknownType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveConfig(tc.typ, tc.o)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
