package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/devguide/internal/clipboard"
	"github.com/joestump/devguide/internal/metrics"
	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/prompt"
	"github.com/joestump/devguide/internal/wizard"
)

type renderOptions struct {
	project string
	catalog string
	phase   string
	sub     string
	story   int
	header  bool
	copy    bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one phase prompt from a project file",
		Example: "  devguide render --project linkshelf.yaml --phase ui-implementation --story 0 --copy\n" +
			"  devguide render --project linkshelf.yaml --catalog guide --phase frontend-development --sub state-management",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadProject(opts.project)
			if err != nil {
				return err
			}
			text, err := renderPrompt(st, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if opts.copy {
				if clipboard.Copy(clipboard.System{}, cliLogger(cmd.ErrOrStderr()), text) {
					fmt.Fprintln(cmd.ErrOrStderr(), okColor("Copied to clipboard."))
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), warnColor("Could not copy to the clipboard."))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.project, "project", "p", "", "project file (yaml, json or toml)")
	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", string(phase.StoryCatalog), "phase catalog: story or guide")
	cmd.Flags().StringVar(&opts.phase, "phase", "", "phase ID, see `devguide phases`")
	cmd.Flags().StringVar(&opts.sub, "sub", "", "guide sub-phase ID (defaults to the first)")
	cmd.Flags().IntVar(&opts.story, "story", -1, "index of the user story to target")
	cmd.Flags().BoolVar(&opts.header, "header", false, "prefix story prompts with the project header")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "also copy the prompt to the system clipboard")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("phase")
	return cmd
}

// renderPrompt resolves one prompt from st. Guide prompts always carry the
// project header; story prompts only when asked.
func renderPrompt(st *wizard.State, opts renderOptions) (string, error) {
	cat, ok := phase.ParseCatalog(opts.catalog)
	if !ok {
		return "", fmt.Errorf("unknown catalog %q (want story or guide)", opts.catalog)
	}
	if err := st.SelectStory(opts.story); err != nil {
		return "", err
	}
	text, ok := wizard.PromptFor(st, cat, opts.phase, opts.sub)
	if !ok {
		return "", fmt.Errorf("phase %q (sub %q) does not apply to a %s project", opts.phase, opts.sub, st.Config.Type)
	}
	if opts.header && cat == phase.StoryCatalog {
		text = prompt.WithHeader(st.Config, text)
	}
	metrics.PromptsRenderedTotal.WithLabelValues("cli").Inc()
	return text, nil
}
