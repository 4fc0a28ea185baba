package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/service"
)

// ExpenseIDInput addresses one expense by path.
type ExpenseIDInput struct {
	ID int64 `path:"id" doc:"Expense ID"`
}

type expenseGetter interface {
	GetExpense(ctx context.Context, ownerID, id int64) (*service.Expense, error)
}

// GetExpenseHandler handles GET /api/v1/expenses/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
}

func NewGetExpenseHandler(svc expenseGetter) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc}
}

func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/api/v1/expenses/{id}",
		Summary:     "Get expense",
		Tags:        []string{"Expenses"},
		Security:    auth.Security(),
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *ExpenseIDInput) (*ExpenseOutput, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expense, err := h.ExpenseService.GetExpense(ctx, ownerID, input.ID)
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to get expense")
	}

	return &ExpenseOutput{Body: fromService(expense)}, nil
}
