package service

import (
	"context"

	"github.com/carson-networks/expense-server/internal/filter"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

const (
	DefaultExpenseLimit = 50
	MaxExpenseLimit     = 200
)

// ExpenseService handles expense business logic. Every method takes the
// owner so callers cannot reach another user's rows.
type ExpenseService struct {
	storage  *storage.Storage
	operator operator.Processor
}

func NewExpenseService(store *storage.Storage, op operator.Processor) *ExpenseService {
	return &ExpenseService{storage: store, operator: op}
}

// ListExpenses returns a page of the owner's expenses matching criteria,
// newest date first.
func (s *ExpenseService) ListExpenses(ctx context.Context, ownerID int64, criteria filter.ExpenseCriteria, cursor *ExpenseCursor) ([]Expense, *ExpenseCursor, error) {
	limit := DefaultExpenseLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	storageFilter := &sqlconfig.ExpenseFilter{
		OwnerID:  ownerID,
		Criteria: criteria,
		Limit:    limit,
		Offset:   offset,
	}

	rows, err := logging.TimedTotal(logging.GetLogData(ctx), storageReadTiming, func() ([]*sqlconfig.Expense, error) {
		return s.storage.Expenses.List(ctx, storageFilter)
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *ExpenseCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &ExpenseCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	converted := make([]Expense, len(rows))
	for i, row := range rows {
		converted[i] = expenseFromStorage(row)
	}

	return converted, nextCursor, nil
}

// GetExpense returns ErrNotFound when the expense is missing or foreign.
func (s *ExpenseService) GetExpense(ctx context.Context, ownerID, id int64) (*Expense, error) {
	row, err := logging.TimedTotal(logging.GetLogData(ctx), storageReadTiming, func() (*sqlconfig.Expense, error) {
		return s.storage.Expenses.FindByID(ctx, id, ownerID)
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	expense := expenseFromStorage(row)
	return &expense, nil
}

// CreateExpense stores a new expense owned by ownerID.
func (s *ExpenseService) CreateExpense(ctx context.Context, ownerID int64, input ExpenseInput) (*Expense, error) {
	action := &actions.CreateExpense{
		Create: sqlconfig.ExpenseCreate{
			OwnerID:     ownerID,
			CategoryID:  input.CategoryID,
			Description: input.Description,
			Amount:      input.Amount,
			Date:        input.Date,
		},
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateActionError(err)
	}

	expense := expenseFromStorage(action.Created)
	return &expense, nil
}

// ReplaceExpense overwrites every writable field.
func (s *ExpenseService) ReplaceExpense(ctx context.Context, ownerID, id int64, input ExpenseInput) (*Expense, error) {
	return s.UpdateExpense(ctx, ownerID, id, ExpensePatch{
		CategoryID:  &input.CategoryID,
		Description: &input.Description,
		Amount:      &input.Amount,
		Date:        &input.Date,
	})
}

// UpdateExpense changes the fields set in patch. An empty patch still
// refreshes updated_at.
func (s *ExpenseService) UpdateExpense(ctx context.Context, ownerID, id int64, patch ExpensePatch) (*Expense, error) {
	action := &actions.UpdateExpense{
		ID:      id,
		OwnerID: ownerID,
		Update: sqlconfig.ExpenseUpdate{
			CategoryID:  patch.CategoryID,
			Description: patch.Description,
			Amount:      patch.Amount,
			Date:        patch.Date,
		},
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateActionError(err)
	}

	expense := expenseFromStorage(action.Updated)
	return &expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, ownerID, id int64) error {
	action := &actions.DeleteExpense{ID: id, OwnerID: ownerID}
	return translateActionError(s.operator.Process(ctx, action))
}
