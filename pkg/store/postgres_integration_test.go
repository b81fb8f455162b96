//go:build integration

package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres starts a postgres container and returns a config pointing at it.
func startPostgres(ctx context.Context, t *testing.T) config.DatabaseConfig {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "movies_db",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	p, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	return config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     p,
		Name:     "movies_db",
		User:     "postgres",
		Password: "password",
		SSLMode:  "disable",
	}
}

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	s := New(startPostgres(ctx, t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.EnsureReady(ctx))
	require.NoError(t, s.Sync(ctx, true))

	movies := NewRepository[models.Movie](s)
	genres := NewRepository[models.Genre](s)

	movie := &models.Movie{Name: "Heat", Image: "heat.jpg", Synopsis: "A heist.", ReleaseYear: 1995}
	require.NoError(t, movies.Create(ctx, movie))

	crime := &models.Genre{Name: "Crime"}
	action := &models.Genre{Name: "Action"}
	require.NoError(t, genres.Create(ctx, crime))
	require.NoError(t, genres.Create(ctx, action))

	require.NoError(t, movies.ReplaceRelated(ctx, movie.ID, MovieGenres, []int64{int64(crime.ID), int64(action.ID)}))

	related, err := Related[models.Genre](ctx, s, MovieGenres, movie.ID)
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, crime.ID, related[0].ID)

	// A dangling id violates the foreign key and leaves the old set in place.
	err = movies.ReplaceRelated(ctx, movie.ID, MovieGenres, []int64{int64(action.ID), 9999})
	require.Error(t, err)

	related, err = Related[models.Genre](ctx, s, MovieGenres, movie.ID)
	require.NoError(t, err)
	assert.Len(t, related, 2)

	require.NoError(t, genres.Delete(ctx, crime.ID, MovieGenres.Inverse("movies")))

	related, err = Related[models.Genre](ctx, s, MovieGenres, movie.ID)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, action.ID, related[0].ID)

	_, err = genres.Get(ctx, crime.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, s.Truncate(ctx))

	all, err := movies.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
