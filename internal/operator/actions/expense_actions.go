package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
	"github.com/carson-networks/expense-server/internal/validation"
)

// CreateExpense inserts an expense owned by OwnerID. Created holds the stored
// row once Perform succeeds.
type CreateExpense struct {
	Create sqlconfig.ExpenseCreate

	Created *sqlconfig.Expense
	IAction
}

func (c *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := requireCategory(ctx, writer, c.Create.CategoryID); err != nil {
		return err
	}

	id, err := writer.Expenses.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	created, err := writer.Expenses.FindByID(ctx, id, c.Create.OwnerID)
	if err != nil {
		return fmt.Errorf("reload expense %d: %w", id, err)
	}
	if created == nil {
		return fmt.Errorf("reload expense %d: %w", id, ErrNotFound)
	}

	c.Created = created
	return nil
}

// UpdateExpense changes one of OwnerID's expenses. Updated holds the stored
// row once Perform succeeds.
type UpdateExpense struct {
	ID      int64
	OwnerID int64
	Update  sqlconfig.ExpenseUpdate

	Updated *sqlconfig.Expense
	IAction
}

func (u *UpdateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	if u.Update.CategoryID != nil {
		if err := requireCategory(ctx, writer, *u.Update.CategoryID); err != nil {
			return err
		}
	}

	found, err := writer.Expenses.Update(ctx, u.ID, u.OwnerID, &u.Update)
	if err != nil {
		return fmt.Errorf("update expense %d: %w", u.ID, err)
	}
	if !found {
		return ErrNotFound
	}

	updated, err := writer.Expenses.FindByID(ctx, u.ID, u.OwnerID)
	if err != nil {
		return fmt.Errorf("reload expense %d: %w", u.ID, err)
	}
	if updated == nil {
		return ErrNotFound
	}

	u.Updated = updated
	return nil
}

// DeleteExpense removes one of OwnerID's expenses.
type DeleteExpense struct {
	ID      int64
	OwnerID int64
	IAction
}

func (d *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Expenses.Delete(ctx, d.ID, d.OwnerID)
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", d.ID, err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func requireCategory(ctx context.Context, writer *storage.Writer, categoryID int64) error {
	category, err := writer.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("find category %d: %w", categoryID, err)
	}
	if category == nil {
		return validation.FieldFailure(validation.LocationBody, "category",
			`Invalid pk "`+strconv.FormatInt(categoryID, 10)+`" - object does not exist.`, categoryID)
	}
	return nil
}
