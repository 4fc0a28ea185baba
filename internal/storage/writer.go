package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Transaction is the part of bob.Tx the Writer needs.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables inside one transaction. A Writer built without a
// transaction (as in tests) commits and rolls back as no-ops.
type Writer struct {
	tx         Transaction
	Expenses   sqlconfig.IExpenseTable
	Categories sqlconfig.ICategoryTable
	Users      sqlconfig.IUserTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:         &tx,
		Expenses:   sqlconfig.NewExpensesTable(tx),
		Categories: sqlconfig.NewCategoriesTable(tx),
		Users:      sqlconfig.NewUsersTable(tx),
	}
}

func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Rollback(context.Background())
}
