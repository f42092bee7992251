package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/joestump/devguide/internal/config"
	"github.com/joestump/devguide/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "devguide",
		Short: "Turn a project description into a sequence of AI development prompts",
		Long: "devguide walks you through describing a project (its type, features, tech stack\n" +
			"and user stories) and renders ready-to-paste prompts for every development phase.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPhasesCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newWizardCmd())
	rootCmd.AddCommand(newSnapshotsCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cliLogger returns a logger for the offline commands. They do not need the
// rest of the configuration, so a config error only costs the log settings.
func cliLogger(w io.Writer) *log.Logger {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	return logging.NewWriter(w, cfg)
}
