package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
)

// Record is the behaviour a model needs to be served by Service.
type Record[T any] interface {
	*T
	Complete() bool
	Merge(src *T)
	PrimaryKey() uint
}

// Service implements list, get, create, update and delete for one resource.
type Service[T any, P Record[T]] struct {
	resource string
	required string
	order    []string
	expand   []store.Scope
	links    []store.Relation
	fill     func(*T)

	repo   *store.Repository[T]
	logger *slog.Logger
}

type (
	GenreService    = Service[models.Genre, *models.Genre]
	ActorService    = Service[models.Actor, *models.Actor]
	DirectorService = Service[models.Director, *models.Director]
)

func NewGenreService(s *store.Store, logger *slog.Logger) *GenreService {
	return &GenreService{
		resource: "Genre",
		required: "Name is required",
		order:    []string{"name"},
		links:    []store.Relation{store.MovieGenres.Inverse("movies")},
		repo:     store.NewRepository[models.Genre](s),
		logger:   logger,
	}
}

func NewActorService(s *store.Store, logger *slog.Logger) *ActorService {
	return &ActorService{
		resource: "Actor",
		required: "All fields are required",
		order:    []string{"last_name", "first_name"},
		links:    []store.Relation{store.MovieActors.Inverse("movies")},
		repo:     store.NewRepository[models.Actor](s),
		logger:   logger,
	}
}

func NewDirectorService(s *store.Store, logger *slog.Logger) *DirectorService {
	return &DirectorService{
		resource: "Director",
		required: "All fields are required",
		order:    []string{"last_name", "first_name"},
		links:    []store.Relation{store.MovieDirectors.Inverse("movies")},
		repo:     store.NewRepository[models.Director](s),
		logger:   logger,
	}
}

// Resource is the singular display name, e.g. "Genre".
func (s *Service[T, P]) Resource() string {
	return s.resource
}

func (s *Service[T, P]) List(ctx context.Context) ([]T, error) {
	scopes := append([]store.Scope{store.OrderBy(s.order...)}, s.expand...)

	records, err := s.repo.List(ctx, scopes...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.resource, err)
	}

	if s.fill != nil {
		for i := range records {
			s.fill(&records[i])
		}
	}

	return records, nil
}

func (s *Service[T, P]) Get(ctx context.Context, id uint) (*T, error) {
	record, err := s.repo.Get(ctx, id, s.expand...)
	if err != nil {
		return nil, s.wrap(err, "get")
	}

	if s.fill != nil {
		s.fill(record)
	}

	return record, nil
}

func (s *Service[T, P]) Create(ctx context.Context, in *T) (*T, error) {
	if !P(in).Complete() {
		return nil, NewValidationError("%s", s.required)
	}

	if err := s.repo.Create(ctx, in); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.resource, err)
	}

	s.logger.Info("new row inserted", "resource", s.resource, "id", P(in).PrimaryKey())

	return s.reload(ctx, in)
}

// Update applies the truthy fields of in to the stored record.
func (s *Service[T, P]) Update(ctx context.Context, id uint, in *T) (*T, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrap(err, "update")
	}

	P(record).Merge(in)

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.resource, err)
	}

	s.logger.Info("row updated", "resource", s.resource, "id", id)

	return s.reload(ctx, record)
}

func (s *Service[T, P]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id, s.links...); err != nil {
		return s.wrap(err, "delete")
	}

	s.logger.Info("row deleted", "resource", s.resource, "id", id)

	return nil
}

// reload re-reads an expanded resource so responses carry its relations.
func (s *Service[T, P]) reload(ctx context.Context, record *T) (*T, error) {
	if len(s.expand) == 0 {
		return record, nil
	}

	return s.Get(ctx, P(record).PrimaryKey())
}

func (s *Service[T, P]) wrap(err error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound(s.resource)
	}

	return fmt.Errorf("%s %s: %w", op, s.resource, err)
}
