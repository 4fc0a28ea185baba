package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/filter"
)

// Expense represents an expense record joined with its category name.
type Expense struct {
	ID           int64           `db:"id"`
	OwnerID      int64           `db:"owner_id"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	Date         time.Time       `db:"date"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	OwnerID     int64
	CategoryID  int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// ExpenseUpdate lists the columns to change; nil fields are left untouched.
// updated_at is always refreshed.
type ExpenseUpdate struct {
	CategoryID  *int64
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
}

// ExpenseFilter specifies filters for listing one owner's expenses.
type ExpenseFilter struct {
	OwnerID  int64
	Criteria filter.ExpenseCriteria
	Limit    int
	Offset   int
}

// IExpenseTable defines the interface for expense storage operations. Every
// method is scoped to an owner so a foreign row behaves as a missing one.
//
//go:generate mockery --name IExpenseTable --output mock_IExpenseTable.go
type IExpenseTable interface {
	FindByID(ctx context.Context, id int64, ownerID int64) (*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (int64, error)
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	Update(ctx context.Context, id int64, ownerID int64, update *ExpenseUpdate) (bool, error)
	Delete(ctx context.Context, id int64, ownerID int64) (bool, error)
}
