package commands

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Command is a single write against the store.
type Command interface {
	Execute(ctx context.Context) error
}

// CreateCommand inserts an entity together with its loaded associations.
type CreateCommand[T any] struct {
	entity *T
	db     *gorm.DB
}

func NewCreateCommand[T any](db *gorm.DB, entity *T) *CreateCommand[T] {
	return &CreateCommand[T]{
		entity: entity,
		db:     db,
	}
}

func (c *CreateCommand[T]) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Create(c.entity).Error
}

// UpdateCommand saves every column of an existing entity.
type UpdateCommand[T any] struct {
	entity *T
	db     *gorm.DB
}

func NewUpdateCommand[T any](db *gorm.DB, entity *T) *UpdateCommand[T] {
	return &UpdateCommand[T]{
		entity: entity,
		db:     db,
	}
}

func (c *UpdateCommand[T]) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Save(c.entity).Error
}

// DeleteCommand removes the row with the given id. It returns
// gorm.ErrRecordNotFound when no row was deleted.
type DeleteCommand[T any] struct {
	id uuid.UUID
	db *gorm.DB
}

func NewDeleteCommand[T any](db *gorm.DB, id uuid.UUID) *DeleteCommand[T] {
	return &DeleteCommand[T]{
		id: id,
		db: db,
	}
}

func (c *DeleteCommand[T]) Execute(ctx context.Context) error {
	result := c.db.WithContext(ctx).Where("id = ?", c.id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RunInTransaction executes cmds in order and rolls back on the first failure.
func RunInTransaction(ctx context.Context, db *gorm.DB, build func(tx *gorm.DB) []Command) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, cmd := range build(tx) {
			if err := cmd.Execute(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
