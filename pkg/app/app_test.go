package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, dbPath string) config.AppConfig {
	t.Helper()

	cfg := config.NewAppConfig(false, true, config.EnvDevelopment,
		config.ServerConfig{Port: 0, ShutdownTimeout: time.Second, CorsOrigin: "*"},
		config.DatabaseConfig{Driver: config.DriverSqlite, Init: config.InitEager, DbPath: dbPath},
	)
	cfg.LogFilePath = filepath.Join(t.TempDir(), "api.log")

	return cfg
}

func TestServeStopsOnCancel(t *testing.T) {
	app, err := NewApp(newTestConfig(t, filepath.Join(t.TempDir(), "movies.db")))
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- app.Serve(ctx) }()

	require.Eventually(t, app.Store.Ready, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeFailsFastWhenEagerInitFails(t *testing.T) {
	app, err := NewApp(newTestConfig(t, filepath.Join(t.TempDir(), "missing", "movies.db")))
	require.NoError(t, err)
	defer app.Close()

	assert.Error(t, app.Serve(context.Background()))
}

func TestSyncAndSeed(t *testing.T) {
	ctx := context.Background()

	app, err := NewApp(newTestConfig(t, filepath.Join(t.TempDir(), "movies.db")))
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Sync(ctx, false))
	require.NoError(t, app.Seed(ctx))
	require.NoError(t, app.Sync(ctx, true))

	var count int64
	require.NoError(t, app.Store.DB(ctx).Table("movies").Count(&count).Error)
	assert.Zero(t, count)
}
