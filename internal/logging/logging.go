// Package logging builds the process logger from configuration.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/joestump/devguide/internal/config"
)

// New returns a logger writing to stderr with the configured level and format.
func New(cfg *config.Config) *log.Logger {
	return NewWriter(os.Stderr, cfg)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, cfg *config.Config) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           cfg.Log.Level,
		Prefix:          "devguide",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	switch cfg.Log.Format {
	case "json":
		l.SetFormatter(log.JSONFormatter)
	case "logfmt":
		l.SetFormatter(log.LogfmtFormatter)
	default:
		l.SetFormatter(log.TextFormatter)
	}
	return l
}
