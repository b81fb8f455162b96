// Package seed fills the catalog with a small sample of movies.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/service"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
	"github.com/leminhohoho/movie-lens/api/pkg/utils"
)

type Summary struct {
	Genres    int
	Actors    int
	Directors int
	Movies    int
}

// Run clears every table and inserts the sample catalog.
func Run(ctx context.Context, s *store.Store, logger *slog.Logger) (Summary, error) {
	var summary Summary

	if err := s.EnsureReady(ctx); err != nil {
		return summary, err
	}

	logger.Info("clearing existing data")

	if err := s.Truncate(ctx); err != nil {
		return summary, fmt.Errorf("clear tables: %w", err)
	}

	db := s.DB(ctx)

	genreIDs := map[string]int64{}
	for _, g := range genres {
		if _, err := utils.InsertOrFetch(ctx, db, logger, "genres", &g, "name = ?", g.Name); err != nil {
			return summary, fmt.Errorf("insert genre %s: %w", g.Name, err)
		}

		genreIDs[g.Name] = int64(g.ID)
	}
	summary.Genres = len(genreIDs)

	actorIDs := map[string]int64{}
	for _, a := range actors {
		if _, err := utils.InsertOrFetch(ctx, db, logger, "actors", &a, "first_name = ? AND last_name = ?", a.FirstName, a.LastName); err != nil {
			return summary, fmt.Errorf("insert actor %s %s: %w", a.FirstName, a.LastName, err)
		}

		actorIDs[a.FirstName+" "+a.LastName] = int64(a.ID)
	}
	summary.Actors = len(actorIDs)

	directorIDs := map[string]int64{}
	for _, d := range directors {
		if _, err := utils.InsertOrFetch(ctx, db, logger, "directors", &d, "first_name = ? AND last_name = ?", d.FirstName, d.LastName); err != nil {
			return summary, fmt.Errorf("insert director %s %s: %w", d.FirstName, d.LastName, err)
		}

		directorIDs[d.FirstName+" "+d.LastName] = int64(d.ID)
	}
	summary.Directors = len(directorIDs)

	svc := service.NewMovieService(s, logger)

	for _, entry := range movies {
		movie := entry.movie

		if _, err := utils.InsertOrFetch(ctx, db, logger, "movies", &movie, "name = ?", movie.Name); err != nil {
			return summary, fmt.Errorf("insert movie %s: %w", movie.Name, err)
		}

		if err := link(ctx, svc, &movie, entry, genreIDs, actorIDs, directorIDs); err != nil {
			return summary, fmt.Errorf("link movie %s: %w", movie.Name, err)
		}

		logger.Info("movie created", "name", movie.Name)
		summary.Movies++
	}

	logger.Info("database seeding completed",
		"genres", summary.Genres,
		"actors", summary.Actors,
		"directors", summary.Directors,
		"movies", summary.Movies,
	)

	return summary, nil
}

func link(ctx context.Context, svc *service.MovieService, movie *models.Movie, entry movieEntry, genreIDs, actorIDs, directorIDs map[string]int64) error {
	ids, err := lookup(genreIDs, entry.genres)
	if err != nil {
		return err
	}

	if _, err := svc.SetGenres(ctx, movie.ID, ids); err != nil {
		return err
	}

	if ids, err = lookup(actorIDs, entry.actors); err != nil {
		return err
	}

	if _, err := svc.SetActors(ctx, movie.ID, ids); err != nil {
		return err
	}

	if ids, err = lookup(directorIDs, entry.directors); err != nil {
		return err
	}

	_, err = svc.SetDirectors(ctx, movie.ID, ids)

	return err
}

func lookup(known map[string]int64, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))

	for _, name := range names {
		id, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown sample entry %q", name)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
