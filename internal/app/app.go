package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/appwrite/appwriteimpl"
	"github.com/fredd/aora/internal/auth"
	"github.com/fredd/aora/internal/auth/authimpl"
	"github.com/fredd/aora/internal/config"
	_ "github.com/fredd/aora/internal/migrations"
	"github.com/fredd/aora/internal/posts"
	"github.com/fredd/aora/internal/posts/postsimpl"
	"github.com/fredd/aora/internal/reconciler"
	"github.com/fredd/aora/internal/reconciler/reconcilerimpl"
	repositories "github.com/fredd/aora/internal/repositories/fx"
	"github.com/fredd/aora/internal/tui"
	"github.com/fredd/aora/pkg/logger"
	"github.com/fredd/aora/pkg/pgx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			appwriteimpl.New,
			fx.As(new(appwrite.Accounts)),
			fx.As(new(appwrite.Databases)),
			fx.As(new(appwrite.Storage)),
			fx.As(new(appwrite.Avatars)),
		),
		fx.Annotate(
			authimpl.New,
			fx.As(new(auth.Service)),
		),
		fx.Annotate(
			postsimpl.New,
			fx.As(new(posts.Service)),
		),
		fx.Annotate(
			reconcilerimpl.New,
			fx.As(new(reconciler.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(
		func(c *config.Config) error {
			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}

			db, err := sql.Open("postgres", c.GetDSN())
			if err != nil {
				return err
			}
			defer db.Close()

			// Schema lives in Go migrations registered by the
			// migrations package import.
			return goose.Up(db, ".")
		}),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, cfg *config.Config,
	rec reconciler.Client, authSvc auth.Service, postsSvc posts.Service) {
	appCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			if err := rec.ScheduleSweeps(appCtx); err != nil {
				log.Error("Failed to schedule orphan sweeps", "error", err)
				return err
			}

			go func() {
				screen := tui.NewScreen(appCtx, postsSvc, authSvc, log)
				if _, err := tea.NewProgram(screen, tea.WithAltScreen()).Run(); err != nil {
					log.Error("Create screen exited with error", "error", err)
				}
				if err := shutdowner.Shutdown(); err != nil {
					log.Error("Failed to trigger shutdown", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
