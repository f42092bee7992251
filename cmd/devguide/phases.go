package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/wizard"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	idColor    = color.New(color.FgYellow).SprintFunc()
	dimColor   = color.New(color.Faint).SprintFunc()
	okColor    = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor  = color.New(color.FgYellow, color.Bold).SprintFunc()
)

func newPhasesCmd() *cobra.Command {
	var (
		typ, catalog            string
		backend, database, auth bool
	)
	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List the development phases that apply to a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := project.ParseType(typ)
			if err != nil {
				return err
			}
			cat, ok := phase.ParseCatalog(catalog)
			if !ok {
				return fmt.Errorf("unknown catalog %q (want story or guide)", catalog)
			}
			o := wizard.Overrides{Authentication: auth}
			if cmd.Flags().Changed("backend") {
				o.Backend = &backend
			}
			if cmd.Flags().Changed("database") {
				o.Database = &database
			}
			cfg, err := wizard.ResolveConfig(t, o)
			if err != nil {
				return err
			}
			printPhases(cmd.OutOrStdout(), phase.Filter(cat.Phases(), cfg))
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", string(project.Static), "project type: static, fullstack, backend or mobile")
	cmd.Flags().StringVarP(&catalog, "catalog", "c", string(phase.StoryCatalog), "phase catalog: story or guide")
	cmd.Flags().BoolVar(&backend, "backend", false, "override whether the project has a backend")
	cmd.Flags().BoolVar(&database, "database", false, "override whether the project has a database")
	cmd.Flags().BoolVar(&auth, "auth", false, "the project needs user authentication")
	return cmd
}

func printPhases(w io.Writer, phases []phase.Phase) {
	if len(phases) == 0 {
		fmt.Fprintln(w, dimColor("No applicable phases."))
		return
	}
	for i, p := range phases {
		fmt.Fprintf(w, "%d. %s %s\n", i+1, titleColor(p.Title), idColor("["+p.ID+"]"))
		fmt.Fprintf(w, "   %s\n", dimColor(p.Description))
		for _, s := range p.SubPhases {
			fmt.Fprintf(w, "   - %s %s\n", s.Title, idColor("["+s.ID+"]"))
		}
	}
}
