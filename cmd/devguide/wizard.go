package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/joestump/devguide/internal/blueprint"
	"github.com/joestump/devguide/internal/clipboard"
	"github.com/joestump/devguide/internal/metrics"
	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/prompt"
	"github.com/joestump/devguide/internal/story"
	"github.com/joestump/devguide/internal/wizard"
)

// storySeparator splits user stories typed into a single text area.
const storySeparator = "---"

func newWizardCmd() *cobra.Command {
	var accessible bool
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Describe a project interactively and print its prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger(cmd.ErrOrStderr())
			tw := &terminalWizard{
				svc:        wizard.NewService(nil, logger),
				st:         wizard.New(),
				out:        cmd.OutOrStdout(),
				logger:     logger,
				accessible: accessible,
			}
			err := tw.run(cmd.Context())
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), dimColor("Aborted."))
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&accessible, "accessible", os.Getenv("ACCESSIBLE") != "", "plain line-by-line prompts for screen readers")
	return cmd
}

// terminalWizard runs the three wizard steps as huh forms over one State.
// There is no snapshot store, so switching type merges entries forward.
type terminalWizard struct {
	svc        *wizard.Service
	st         *wizard.State
	out        io.Writer
	logger     *log.Logger
	accessible bool
}

func (w *terminalWizard) form(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(w.accessible)
}

func (w *terminalWizard) run(ctx context.Context) error {
	if err := w.chooseType(ctx); err != nil {
		return err
	}
	if err := w.configure(ctx); err != nil {
		return err
	}
	w.st.Step = wizard.StepDetails
	if err := w.details(ctx); err != nil {
		return err
	}
	w.st.Step = wizard.StepPrompts
	return w.prompts(ctx)
}

func (w *terminalWizard) chooseType(ctx context.Context) error {
	t := w.st.Config.Type
	options := make([]huh.Option[project.Type], 0, 4)
	for _, bp := range blueprint.All() {
		options = append(options, huh.NewOption(bp.Label+" - "+bp.Description, bp.Type))
	}
	err := w.form(huh.NewGroup(
		huh.NewSelect[project.Type]().
			Title("What are you building?").
			Options(options...).
			Value(&t),
	)).RunWithContext(ctx)
	if err != nil {
		return err
	}
	return w.svc.SelectType(ctx, w.st, t)
}

func (w *terminalWizard) configure(ctx context.Context) error {
	toggles := w.st.Toggles()
	if !toggles.Any() {
		return nil
	}
	backend := w.st.Config.NeedsBackend
	database := w.st.Config.NeedsDatabase
	auth := w.st.Config.NeedsAuthentication

	var fields []huh.Field
	if toggles.Backend {
		fields = append(fields, huh.NewConfirm().Title("Does it need a backend server?").Value(&backend))
	}
	if toggles.Database {
		fields = append(fields, huh.NewConfirm().Title("Does it need a database?").Description("Requires a backend.").Value(&database))
	}
	if toggles.Authentication {
		fields = append(fields, huh.NewConfirm().Title("Do users need to sign in?").Value(&auth))
	}
	if err := w.form(huh.NewGroup(fields...)).RunWithContext(ctx); err != nil {
		return err
	}

	if toggles.Backend {
		if err := w.st.SetBackend(backend); err != nil {
			return err
		}
	}
	if toggles.Database {
		err := w.st.SetDatabase(database)
		if errors.Is(err, wizard.ErrDatabaseWithoutBackend) {
			fmt.Fprintln(w.out, warnColor("Skipping the database: it needs a backend."))
		} else if err != nil {
			return err
		}
	}
	if toggles.Authentication {
		if err := w.st.SetAuthentication(auth); err != nil {
			return err
		}
	}
	w.svc.Refresh(ctx, w.st)
	return nil
}

func (w *terminalWizard) details(ctx context.Context) error {
	bp := w.st.Blueprint()
	name := w.st.Details.Name
	description := w.st.Details.Description
	features := project.Filled(w.st.Details.Features)
	tech := project.Filled(w.st.Details.TechStack)
	var extraFeatures, extraTech string
	stories := strings.Join(project.Filled(w.st.Details.UserStories), "\n"+storySeparator+"\n")

	var featureOpts []huh.Option[string]
	for _, g := range blueprint.AvailableFeatures(bp, w.st.Config) {
		for _, f := range g.Items {
			featureOpts = append(featureOpts, huh.NewOption(f.Name+" ("+string(g.Category)+")", f.Name))
		}
	}
	var techOpts []huh.Option[string]
	for _, g := range blueprint.AvailableTech(bp, w.st.Config) {
		for _, t := range g.Items {
			techOpts = append(techOpts, huh.NewOption(t.Name+" ("+string(g.Category)+")", t.Name))
		}
	}

	err := w.form(
		huh.NewGroup(
			huh.NewInput().Title("Project name").Value(&name),
			huh.NewText().Title("Description").Description("What does it do, and for whom?").Value(&description),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Core features").Options(featureOpts...).Value(&features),
			huh.NewInput().Title("Other features").Description("Comma separated.").Value(&extraFeatures),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Tech stack").Options(techOpts...).Value(&tech),
			huh.NewInput().Title("Other technologies").Description("Comma separated.").Value(&extraTech),
		),
		huh.NewGroup(
			huh.NewText().
				Title("User stories").
				Description("Title on the first line, then a description and an \"Acceptance Criteria:\" list. Separate stories with a line containing only "+storySeparator+".").
				Lines(10).
				Value(&stories),
		),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	w.st.SetName(strings.TrimSpace(name))
	w.st.SetDescription(description)
	w.st.Details.SetItems(project.Features, project.Union(features, splitList(extraFeatures)))
	w.st.Details.SetItems(project.TechStack, project.Union(tech, splitList(extraTech)))
	w.st.Details.SetItems(project.UserStories, splitStories(stories))
	return nil
}

// promptChoice addresses one renderable prompt; an empty id means "done".
type promptChoice struct {
	catalog phase.Catalog
	id      string
	sub     string
	request bool
}

func (w *terminalWizard) prompts(ctx context.Context) error {
	if err := w.chooseStory(ctx); err != nil {
		return err
	}

	var options []huh.Option[promptChoice]
	for _, p := range phase.Filter(phase.StoryPhases(), w.st.Config) {
		options = append(options, huh.NewOption("Story: "+p.Title, promptChoice{catalog: phase.StoryCatalog, id: p.ID}))
	}
	for _, p := range phase.Filter(phase.GuidePhases(), w.st.Config) {
		for _, s := range p.SubPhases {
			options = append(options, huh.NewOption("Guide: "+p.Title+" > "+s.Title, promptChoice{catalog: phase.GuideCatalog, id: p.ID, sub: s.ID}))
		}
	}
	options = append(options,
		huh.NewOption("Ask an assistant to write user stories", promptChoice{request: true}),
		huh.NewOption("Done", promptChoice{}),
	)

	fmt.Fprintln(w.out, titleColor(strings.TrimSpace(prompt.Header(w.st.Config))))
	for {
		var choice promptChoice
		err := w.form(huh.NewGroup(
			huh.NewSelect[promptChoice]().
				Title("Which prompt?").
				Options(options...).
				Height(12).
				Value(&choice),
		)).RunWithContext(ctx)
		if err != nil {
			return err
		}
		if choice == (promptChoice{}) {
			return nil
		}

		text, ok := w.render(choice)
		if !ok {
			fmt.Fprintln(w.out, warnColor("That prompt does not apply to this project."))
			continue
		}
		metrics.PromptsRenderedTotal.WithLabelValues("cli").Inc()
		fmt.Fprintf(w.out, "\n%s\n%s\n\n", dimColor(strings.Repeat("-", 60)), text)

		copyIt := true
		err = w.form(huh.NewGroup(
			huh.NewConfirm().Title("Copy to clipboard?").Value(&copyIt),
		)).RunWithContext(ctx)
		if err != nil {
			return err
		}
		if copyIt {
			if clipboard.Copy(clipboard.System{}, w.logger, text) {
				fmt.Fprintln(w.out, okColor("Copied to clipboard."))
			} else {
				fmt.Fprintln(w.out, warnColor("Could not copy to the clipboard."))
			}
		}
	}
}

func (w *terminalWizard) chooseStory(ctx context.Context) error {
	all := w.st.Stories()
	if len(all) == 0 {
		return nil
	}
	selected := w.st.SelectedStory
	options := []huh.Option[int]{huh.NewOption("No specific story", -1)}
	for _, s := range all {
		options = append(options, huh.NewOption(story.Summary(s.Story), s.Index))
	}
	err := w.form(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Which user story should the story prompts target?").
			Options(options...).
			Value(&selected),
	)).RunWithContext(ctx)
	if err != nil {
		return err
	}
	return w.st.SelectStory(selected)
}

func (w *terminalWizard) render(c promptChoice) (string, bool) {
	if c.request {
		return prompt.UserStoriesRequest(w.st.Details.Name, w.st.Details.Features), true
	}
	return wizard.PromptFor(w.st, c.catalog, c.id, c.sub)
}

// splitList splits a comma separated answer, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitStories splits text on separator lines and keeps non-empty stories.
func splitStories(text string) []string {
	var out []string
	var cur []string
	flush := func() {
		if s := strings.TrimSpace(strings.Join(cur, "\n")); s != "" {
			out = append(out, s)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == storySeparator {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
