package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/leminhohoho/movie-lens/api/pkg/app"
	"github.com/leminhohoho/movie-lens/api/pkg/config"
)

type cli struct {
	Serve serveCmd `cmd:"" default:"1" help:"Run the HTTP API (default)."`
	Sync  syncCmd  `cmd:"" help:"Synchronise the database schema."`
	Seed  seedCmd  `cmd:"" help:"Replace the catalog with sample data."`
}

type serveCmd struct{}

func (serveCmd) Run(ctx context.Context, a *app.App) error {
	return a.Serve(ctx)
}

type syncCmd struct {
	Force bool `help:"Drop every table before synchronising."`
}

func (c syncCmd) Run(ctx context.Context, a *app.App) error {
	return a.Sync(ctx, c.Force)
}

type seedCmd struct{}

func (seedCmd) Run(ctx context.Context, a *app.App) error {
	return a.Seed(ctx)
}

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cmd cli
	kctx := kong.Parse(&cmd,
		kong.Name("movie-lens-api"),
		kong.Description("REST API for the movie catalog."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatal(err)
	}

	app, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = kctx.Run(app)
	app.Close()

	if err != nil {
		log.Fatal(err)
	}
}
