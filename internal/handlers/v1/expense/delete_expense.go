package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/auth"
)

type expenseDeleter interface {
	DeleteExpense(ctx context.Context, ownerID, id int64) error
}

// DeleteExpenseHandler handles DELETE /api/v1/expenses/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-expense",
		Method:        http.MethodDelete,
		Path:          "/api/v1/expenses/{id}",
		Summary:       "Delete expense",
		Description:   "Permanently deletes one of the caller's expenses.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.Security(),
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *ExpenseIDInput) (*struct{}, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.ExpenseService.DeleteExpense(ctx, ownerID, input.ID); err != nil {
		return nil, toHTTPError(ctx, err, "failed to delete expense")
	}
	return &struct{}{}, nil
}
