package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joestump/devguide/internal/config"
	"github.com/joestump/devguide/internal/db"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/store"
)

func newSnapshotsCmd() *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Show the feature, tech stack and story lists remembered per project type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			ss := store.NewSnapshotStore(database)
			if clear {
				for _, t := range project.Types() {
					if err := ss.Delete(cmd.Context(), t); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), okColor("Snapshots cleared."))
				return nil
			}

			rows, err := ss.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list snapshots: %w", err)
			}
			printSnapshots(cmd.OutOrStdout(), rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "delete every stored snapshot")
	return cmd
}

func printSnapshots(w io.Writer, rows []*store.SnapshotRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, dimColor("No snapshots stored."))
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", titleColor(r.StorageKey), dimColor(r.UpdatedAt.UTC().Format("2006-01-02 15:04:05")))
		snap, err := r.Decode()
		if err != nil {
			fmt.Fprintf(w, "   %s\n", warnColor("unreadable: "+err.Error()))
			continue
		}
		fmt.Fprintf(w, "   features: %d  tech stack: %d  user stories: %d\n",
			len(project.Filled(snap.Features)),
			len(project.Filled(snap.TechStack)),
			len(project.Filled(snap.UserStories)))
	}
}
