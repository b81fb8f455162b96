package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
)

// MovieService serves movies with genres, actors and directors expanded, and
// replaces those associations wholesale.
type MovieService struct {
	*Service[models.Movie, *models.Movie]

	store *store.Store
}

func NewMovieService(s *store.Store, logger *slog.Logger) *MovieService {
	return &MovieService{
		Service: &Service[models.Movie, *models.Movie]{
			resource: "Movie",
			required: "All fields are required",
			order:    []string{"name"},
			expand: []store.Scope{
				store.Preload("Genres"),
				store.Preload("Actors"),
				store.Preload("Directors"),
			},
			links:  []store.Relation{store.MovieGenres, store.MovieActors, store.MovieDirectors},
			fill:   (*models.Movie).FillRelations,
			repo:   store.NewRepository[models.Movie](s),
			logger: logger,
		},
		store: s,
	}
}

// SetGenres makes ids the movie's complete genre set. A nil slice stands for
// a body that was not an array.
func (m *MovieService) SetGenres(ctx context.Context, movieID uint, ids []int64) ([]models.Genre, error) {
	return setRelated[models.Genre](ctx, m, store.MovieGenres, "genre", movieID, ids)
}

func (m *MovieService) SetActors(ctx context.Context, movieID uint, ids []int64) ([]models.Actor, error) {
	return setRelated[models.Actor](ctx, m, store.MovieActors, "actor", movieID, ids)
}

func (m *MovieService) SetDirectors(ctx context.Context, movieID uint, ids []int64) ([]models.Director, error) {
	return setRelated[models.Director](ctx, m, store.MovieDirectors, "director", movieID, ids)
}

func setRelated[R any](ctx context.Context, m *MovieService, rel store.Relation, kind string, movieID uint, ids []int64) ([]R, error) {
	if ids == nil {
		return nil, NewValidationError("Body must be an array of %s IDs", kind)
	}

	if err := m.repo.ReplaceRelated(ctx, movieID, rel, ids); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound(m.resource)
		}

		return nil, fmt.Errorf("set %ss of movie %d: %w", kind, movieID, err)
	}

	m.logger.Info("associations replaced", "movie_id", movieID, "relation", rel.JoinTable, "ids", ids)

	related, err := store.Related[R](ctx, m.store, rel, movieID)
	if err != nil {
		return nil, fmt.Errorf("get %ss of movie %d: %w", kind, movieID, err)
	}

	return related, nil
}
