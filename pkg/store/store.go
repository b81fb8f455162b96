package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/leminhohoho/movie-lens/api/pkg/logger"
	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Store owns the database handle. The handle is opened by EnsureReady, which
// can be called once at start-up or on every request; only the first
// successful call does any work.
type Store struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger

	mu    sync.RWMutex
	db    *gorm.DB
	ready bool
}

func New(cfg config.DatabaseConfig, logger *slog.Logger) *Store {
	return &Store{cfg: cfg, logger: logger}
}

// EnsureReady opens the connection, checks it and synchronises the schema.
// A failed attempt leaves the store unready so the next call retries.
func (s *Store) EnsureReady(ctx context.Context) error {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if ready {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	if s.db == nil {
		db, err := s.open()
		if err != nil {
			return fmt.Errorf("open %s database: %w", s.cfg.Driver, err)
		}

		s.db = db
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	s.logger.Info("database connection established", "driver", s.cfg.Driver)

	if err := migrate(s.db.WithContext(ctx)); err != nil {
		return fmt.Errorf("sync schema: %w", err)
	}

	s.logger.Info("database models synchronized")

	s.ready = true

	return nil
}

func (s *Store) open() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch s.cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(s.cfg.DSN())
	default:
		dialector = sqlite.Open(s.cfg.DSN())
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:                   logger.NewGormLogger(s.logger),
		DisableAutomaticPing:     true,
		TranslateError:           true,
		DisableNestedTransaction: true,
	})
}

// Sync synchronises the schema. With force every table is dropped first.
func (s *Store) Sync(ctx context.Context, force bool) error {
	if err := s.EnsureReady(ctx); err != nil {
		return err
	}

	db := s.DB(ctx)

	if force {
		if err := db.Migrator().DropTable(tables()...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}

		s.logger.Warn("all tables dropped")
	}

	return migrate(db)
}

// Truncate removes every row from every table, join tables first.
func (s *Store) Truncate(ctx context.Context) error {
	return s.DB(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range tables() {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DB returns a session bound to ctx.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.WithContext(ctx)
}

func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ready
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	s.ready = false

	return sqlDB.Close()
}

// tables lists models in dependency order: join tables before the entities
// they reference.
func tables() []interface{} {
	return []interface{}{
		&models.MovieGenre{},
		&models.MovieActor{},
		&models.MovieDirector{},
		&models.Movie{},
		&models.Genre{},
		&models.Actor{},
		&models.Director{},
	}
}

func migrate(db *gorm.DB) error {
	joins := []struct {
		field string
		model interface{}
	}{
		{"Genres", &models.MovieGenre{}},
		{"Actors", &models.MovieActor{}},
		{"Directors", &models.MovieDirector{}},
	}

	for _, j := range joins {
		if err := db.SetupJoinTable(&models.Movie{}, j.field, j.model); err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&models.Genre{},
		&models.Actor{},
		&models.Director{},
		&models.Movie{},
	)
}
