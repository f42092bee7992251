package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joestump/devguide/internal/build"
	"github.com/joestump/devguide/internal/config"
	"github.com/joestump/devguide/internal/db"
	"github.com/joestump/devguide/internal/handler"
	"github.com/joestump/devguide/internal/llm"
	"github.com/joestump/devguide/internal/logging"
	"github.com/joestump/devguide/internal/session"
	"github.com/joestump/devguide/internal/store"
	"github.com/joestump/devguide/internal/wizard"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.New(cfg)

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := session.NewManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)
			svc := wizard.NewService(store.NewSnapshotStore(database), logger)

			// Fail at startup rather than on the first Generate click.
			if _, err := llm.SystemPrompt(cfg.LLM.Prompt, llm.SystemData{}); err != nil {
				return fmt.Errorf("llm.prompt: %w", err)
			}
			ai, err := llm.New(cfg)
			if err != nil {
				return err
			}
			if ai != nil {
				ai = llm.Instrument(ai)
				logger.Info("ai completion enabled", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
			} else {
				logger.Info("ai completion disabled")
			}

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				Wizard:         svc,
				Completer:      ai,
				SystemPrompt:   cfg.LLM.Prompt,
				Logger:         logger,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", cfg.HTTP.Addr, "version", build.Version, "db", cfg.DB.Driver)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
