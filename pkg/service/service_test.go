package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	genres    *GenreService
	actors    *ActorService
	directors *DirectorService
	movies    *MovieService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.New(config.DatabaseConfig{
		Driver: config.DriverSqlite,
		DbPath: filepath.Join(t.TempDir(), "movies.db"),
	}, logger)

	require.NoError(t, s.EnsureReady(context.Background()))
	t.Cleanup(func() { _ = s.Close() })

	return fixture{
		genres:    NewGenreService(s, logger),
		actors:    NewActorService(s, logger),
		directors: NewDirectorService(s, logger),
		movies:    NewMovieService(s, logger),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := &models.Actor{FirstName: "Heath", LastName: "Ledger", Nationality: "Australian", Image: "ledger.jpg", Birthday: date(1979, 4, 4)}
	created, err := f.actors.Create(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := f.actors.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heath", got.FirstName)
	assert.Equal(t, "Ledger", got.LastName)
	assert.Equal(t, "Australian", got.Nationality)
	assert.Equal(t, "ledger.jpg", got.Image)
	assert.True(t, got.Birthday.Equal(date(1979, 4, 4)))
}

func TestCreateRequiresEveryField(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.genres.Create(ctx, &models.Genre{})
	require.True(t, IsValidation(err))
	assert.EqualError(t, err, "Name is required")

	_, err = f.movies.Create(ctx, &models.Movie{Name: "Avatar", Image: "a.jpg", Synopsis: "Pandora"})
	require.True(t, IsValidation(err))
	assert.EqualError(t, err, "All fields are required")

	_, err = f.directors.Create(ctx, &models.Director{FirstName: "Lars", LastName: "Janssen", Image: "j.jpg", Birthday: date(1980, 1, 1)})
	assert.True(t, IsValidation(err))
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, name := range []string{"Drama", "Action", "Comedy"} {
		_, err := f.genres.Create(ctx, &models.Genre{Name: name})
		require.NoError(t, err)
	}

	genres, err := f.genres.List(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, []string{"Action", "Comedy", "Drama"}, []string{genres[0].Name, genres[1].Name, genres[2].Name})

	people := [][2]string{{"Ken", "Jeong"}, {"Arden", "Cho"}, {"Bruce", "Jeong"}}
	for _, p := range people {
		_, err := f.directors.Create(ctx, &models.Director{FirstName: p[0], LastName: p[1], Nationality: "American", Image: "x.jpg", Birthday: date(1970, 1, 1)})
		require.NoError(t, err)
	}

	directors, err := f.directors.List(ctx)
	require.NoError(t, err)
	require.Len(t, directors, 3)
	assert.Equal(t, "Cho", directors[0].LastName)
	assert.Equal(t, "Bruce", directors[1].FirstName)
	assert.Equal(t, "Ken", directors[2].FirstName)

	for _, name := range []string{"The Matrix", "Inception"} {
		_, err := f.movies.Create(ctx, &models.Movie{Name: name, Image: "m.jpg", Synopsis: "s", ReleaseYear: 2000})
		require.NoError(t, err)
	}

	movies, err := f.movies.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Inception", movies[0].Name)
	assert.Equal(t, "The Matrix", movies[1].Name)
	assert.NotNil(t, movies[0].Genres)
}

func TestUpdateOnlyTouchesTruthyFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	actor, err := f.actors.Create(ctx, &models.Actor{FirstName: "Christian", LastName: "Bale", Nationality: "British", Image: "bale.jpg", Birthday: date(1974, 1, 30)})
	require.NoError(t, err)

	updated, err := f.actors.Update(ctx, actor.ID, &models.Actor{Nationality: "Welsh"})
	require.NoError(t, err)
	assert.Equal(t, "Welsh", updated.Nationality)

	got, err := f.actors.Get(ctx, actor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Christian", got.FirstName)
	assert.Equal(t, "Bale", got.LastName)
	assert.Equal(t, "bale.jpg", got.Image)
	assert.True(t, got.Birthday.Equal(date(1974, 1, 30)))
	assert.Equal(t, "Welsh", got.Nationality)

	movie, err := f.movies.Create(ctx, &models.Movie{Name: "Titanic", Image: "t.jpg", Synopsis: "ship", ReleaseYear: 1997})
	require.NoError(t, err)

	updatedMovie, err := f.movies.Update(ctx, movie.ID, &models.Movie{Name: "Titanic (1997)", Synopsis: "", ReleaseYear: 0})
	require.NoError(t, err)
	assert.Equal(t, "Titanic (1997)", updatedMovie.Name)
	assert.Equal(t, "ship", updatedMovie.Synopsis)
	assert.Equal(t, 1997, updatedMovie.ReleaseYear)
}

func TestUpdateAndDeleteMissingRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.genres.Update(ctx, 404, &models.Genre{Name: "Noir"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Genre not found")

	assert.ErrorIs(t, f.movies.Delete(ctx, 404), ErrNotFound)

	_, err = f.directors.Get(ctx, 404)
	assert.EqualError(t, err, "Director not found")
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	genre, err := f.genres.Create(ctx, &models.Genre{Name: "Western"})
	require.NoError(t, err)
	actor, err := f.actors.Create(ctx, &models.Actor{FirstName: "Clint", LastName: "Eastwood", Nationality: "American", Image: "e.jpg", Birthday: date(1930, 5, 31)})
	require.NoError(t, err)
	director, err := f.directors.Create(ctx, &models.Director{FirstName: "Sergio", LastName: "Leone", Nationality: "Italian", Image: "l.jpg", Birthday: date(1929, 1, 3)})
	require.NoError(t, err)
	movie, err := f.movies.Create(ctx, &models.Movie{Name: "Unforgiven", Image: "u.jpg", Synopsis: "gunslinger", ReleaseYear: 1992})
	require.NoError(t, err)

	_, err = f.movies.SetGenres(ctx, movie.ID, []int64{int64(genre.ID)})
	require.NoError(t, err)
	_, err = f.movies.SetActors(ctx, movie.ID, []int64{int64(actor.ID)})
	require.NoError(t, err)
	_, err = f.movies.SetDirectors(ctx, movie.ID, []int64{int64(director.ID)})
	require.NoError(t, err)

	require.NoError(t, f.genres.Delete(ctx, genre.ID))
	_, err = f.genres.Get(ctx, genre.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := f.movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
	assert.Len(t, got.Actors, 1)

	require.NoError(t, f.actors.Delete(ctx, actor.ID))
	_, err = f.actors.Get(ctx, actor.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.movies.Delete(ctx, movie.ID))
	_, err = f.movies.Get(ctx, movie.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.directors.Get(ctx, director.ID)
	assert.NoError(t, err)
	require.NoError(t, f.directors.Delete(ctx, director.ID))
	_, err = f.directors.Get(ctx, director.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetGenresReplacesPreviousSet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	movie, err := f.movies.Create(ctx, &models.Movie{Name: "Black Phone 2", Image: "b.jpg", Synopsis: "calls", ReleaseYear: 2025})
	require.NoError(t, err)
	assert.Empty(t, movie.Genres)

	var ids []int64
	for _, name := range []string{"Horror", "Thriller", "Mystery"} {
		g, err := f.genres.Create(ctx, &models.Genre{Name: name})
		require.NoError(t, err)
		ids = append(ids, int64(g.ID))
	}

	genres, err := f.movies.SetGenres(ctx, movie.ID, ids[:2])
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Horror", genres[0].Name)
	assert.Equal(t, "Thriller", genres[1].Name)

	got, err := f.movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, got.Genres, 2)

	genres, err = f.movies.SetGenres(ctx, movie.ID, ids[2:])
	require.NoError(t, err)
	require.Len(t, genres, 1)

	got, err = f.movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Mystery", got.Genres[0].Name)

	genres, err = f.movies.SetGenres(ctx, movie.ID, []int64{})
	require.NoError(t, err)
	assert.Empty(t, genres)

	got, err = f.movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Genres)
	assert.Empty(t, got.Genres)
}

func TestSetRelatedErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.movies.SetActors(ctx, 1, nil)
	require.True(t, IsValidation(err))
	assert.EqualError(t, err, "Body must be an array of actor IDs")

	_, err = f.movies.SetDirectors(ctx, 77, []int64{1})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Movie not found")

	movie, err := f.movies.Create(ctx, &models.Movie{Name: "Heat", Image: "h.jpg", Synopsis: "heist", ReleaseYear: 1995})
	require.NoError(t, err)

	_, err = f.movies.SetGenres(ctx, movie.ID, []int64{12345})
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.NotErrorIs(t, err, ErrNotFound)
}
