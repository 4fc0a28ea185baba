package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

type CreateCategory struct {
	Name string

	CreatedID int64
	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Categories.Insert(ctx, c.Name)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	c.CreatedID = id
	return nil
}

type RenameCategory struct {
	ID   int64
	Name string
	IAction
}

func (r *RenameCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Categories.Rename(ctx, r.ID, r.Name)
	if err != nil {
		return fmt.Errorf("rename category %d: %w", r.ID, err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category and, through the foreign key, every
// expense filed under it.
type DeleteCategory struct {
	ID int64
	IAction
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Categories.Delete(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", d.ID, err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

type CreateUser struct {
	Create sqlconfig.UserCreate

	CreatedID int64
	IAction
}

func (c *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Users.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	c.CreatedID = id
	return nil
}

// DeleteUser removes a user and, through the foreign key, all of their
// expenses.
type DeleteUser struct {
	ID int64
	IAction
}

func (d *DeleteUser) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Users.Delete(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", d.ID, err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
