package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID           int64
	OwnerID      int64
	CategoryID   int64
	CategoryName string
	Description  string
	Amount       decimal.Decimal
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ExpenseInput is the full writable field set, used by create and replace.
type ExpenseInput struct {
	CategoryID  int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// ExpensePatch carries only the fields a partial update changes.
type ExpensePatch struct {
	CategoryID  *int64
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
}

// ExpenseCursor identifies a position in a paginated result set.
type ExpenseCursor struct {
	Position int
	Limit    int
}

func expenseFromStorage(row *sqlconfig.Expense) Expense {
	return Expense{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Description:  row.Description,
		Amount:       row.Amount,
		Date:         row.Date,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
