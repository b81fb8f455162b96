package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows or expands a query, see gorm's Scopes.
type Scope = func(*gorm.DB) *gorm.DB

func OrderBy(columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		for _, column := range columns {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}})
		}

		return db
	}
}

// Preload eagerly loads an association, ordered by the related id.
func Preload(association string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association, func(db *gorm.DB) *gorm.DB {
			return db.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
		})
	}
}

// Repository is the CRUD access path for one entity type.
type Repository[T any] struct {
	store *Store
}

func NewRepository[T any](s *Store) *Repository[T] {
	return &Repository[T]{store: s}
}

func (r *Repository[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	records := []T{}

	if err := r.store.DB(ctx).Scopes(scopes...).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repository[T]) Get(ctx context.Context, id uint, scopes ...Scope) (*T, error) {
	var record T

	if err := r.store.DB(ctx).Scopes(scopes...).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &record, nil
}

func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	return r.store.DB(ctx).Omit(clause.Associations).Create(record).Error
}

// Save writes every column of record. Associations are left untouched.
func (r *Repository[T]) Save(ctx context.Context, record *T) error {
	return r.store.DB(ctx).Omit(clause.Associations).Save(record).Error
}

// Delete removes the record together with its rows in the given join tables.
func (r *Repository[T]) Delete(ctx context.Context, id uint, links ...Relation) error {
	return r.store.DB(ctx).Transaction(func(tx *gorm.DB) error {
		var record T

		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}

			return err
		}

		for _, link := range links {
			if err := deleteLinks(tx, link, id); err != nil {
				return err
			}
		}

		return tx.Delete(&record).Error
	})
}

// ReplaceRelated swaps the owner's join rows for exactly targetIDs in one
// transaction. Target ids are not checked here; the join table's constraints
// are the only guard, and a violation rolls the whole replacement back.
func (r *Repository[T]) ReplaceRelated(ctx context.Context, id uint, rel Relation, targetIDs []int64) error {
	return r.store.DB(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return ErrNotFound
		}

		if err := deleteLinks(tx, rel, id); err != nil {
			return err
		}

		if len(targetIDs) == 0 {
			return nil
		}

		rows := make([]map[string]interface{}, 0, len(targetIDs))
		for _, targetID := range targetIDs {
			rows = append(rows, map[string]interface{}{
				rel.OwnerKey:  id,
				rel.TargetKey: targetID,
			})
		}

		if err := tx.Table(rel.JoinTable).Create(rows).Error; err != nil {
			return fmt.Errorf("insert into %s: %w", rel.JoinTable, err)
		}

		return nil
	})
}

// Related loads the records linked to ownerID through rel, ordered by id.
func Related[R any](ctx context.Context, s *Store, rel Relation, ownerID uint) ([]R, error) {
	records := []R{}

	err := s.DB(ctx).
		Model(new(R)).
		Select(rel.TargetTable+".*").
		Joins(fmt.Sprintf("JOIN %s ON %s.%s = %s.id", rel.JoinTable, rel.JoinTable, rel.TargetKey, rel.TargetTable)).
		Where(fmt.Sprintf("%s.%s = ?", rel.JoinTable, rel.OwnerKey), ownerID).
		Order(rel.TargetTable + ".id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func deleteLinks(tx *gorm.DB, rel Relation, ownerID uint) error {
	if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", rel.JoinTable, rel.OwnerKey), ownerID).Error; err != nil {
		return fmt.Errorf("delete from %s: %w", rel.JoinTable, err)
	}

	return nil
}
