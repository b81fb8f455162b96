package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/leminhohoho/movie-lens/api/pkg/api"
	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/leminhohoho/movie-lens/api/pkg/logger"
	"github.com/leminhohoho/movie-lens/api/pkg/seed"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
)

type App struct {
	Config config.AppConfig
	Logger *slog.Logger
	Store  *store.Store
	API    *api.API

	ErrChan chan error
}

func NewApp(cfg config.AppConfig) (*App, error) {
	var err error

	app := &App{
		Config:  cfg,
		ErrChan: make(chan error, 1),
	}

	app.Logger, err = logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	app.Store = store.New(cfg.DatabaseConfig, app.Logger)
	app.API = api.New(cfg, app.Logger, app.Store)

	return app, nil
}

// Serve runs the HTTP server until ctx is cancelled or the server fails.
// With eager initialisation a database that cannot be reached stops the
// process before the listener starts.
func (a *App) Serve(ctx context.Context) error {
	a.Logger.Debug(
		"server info",
		"env", a.Config.Env,
		"addr", a.Config.ServerConfig.Addr(),
		"db_driver", a.Config.DatabaseConfig.Driver,
		"db_init", a.Config.DatabaseConfig.Init,
		"db_path", a.Config.DatabaseConfig.DbPath,
		"rate_limit_rps", a.Config.ServerConfig.RateLimitRPS,
		"debug", a.Config.Debug,
		"silent", a.Config.Silent,
	)

	if a.Config.DatabaseConfig.Init == config.InitEager {
		if err := a.Store.EnsureReady(ctx); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         a.Config.ServerConfig.Addr(),
		Handler:      a.API.Routes(),
		ErrorLog:     slog.NewLogLogger(a.Logger.Handler(), slog.LevelError),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		a.Logger.Info("server started", "addr", srv.Addr, "env", a.Config.Env)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.ErrChan <- err
		}
	}()

	select {
	case err := <-a.ErrChan:
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down server", "timeout", a.Config.ServerConfig.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ServerConfig.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	a.Logger.Info("server stopped")

	return nil
}

// Sync synchronises the schema, dropping every table first when force is set.
func (a *App) Sync(ctx context.Context, force bool) error {
	if err := a.Store.Sync(ctx, force); err != nil {
		return err
	}

	a.Logger.Info("database synchronized", "force", force)

	return nil
}

// Seed replaces the catalog with the bundled sample data.
func (a *App) Seed(ctx context.Context) error {
	_, err := seed.Run(ctx, a.Store, a.Logger)
	return err
}

func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		a.Logger.Error("failed to close database", "error", err)
	}

	close(a.ErrChan)
}
