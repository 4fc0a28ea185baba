package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/filter"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListExpensesCursor points at the next page.
type ListExpensesCursor struct {
	Position int `json:"position" minimum:"0" doc:"Offset of the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"200" doc:"Page size used for this cursor"`
}

// ListExpensesInput carries the filter and paging query parameters. Unknown
// parameters are ignored.
type ListExpensesInput struct {
	Date     string `query:"date" doc:"Exact date, YYYY-MM-DD or DD-MM-YYYY"`
	DateFrom string `query:"date_from" doc:"Earliest date, inclusive"`
	DateTo   string `query:"date_to" doc:"Latest date, inclusive"`
	Category string `query:"category" doc:"Category name, case-insensitive exact match"`
	Position int    `query:"position" minimum:"0" default:"0" doc:"Offset into the result set"`
	Limit    int    `query:"limit" minimum:"1" maximum:"200" default:"50" doc:"Page size"`
}

type ListExpensesResponseBody struct {
	Expenses   []Expense           `json:"expenses" doc:"Page of expenses, newest date first"`
	NextCursor *ListExpensesCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

type expenseLister interface {
	ListExpenses(ctx context.Context, ownerID int64, criteria filter.ExpenseCriteria, cursor *service.ExpenseCursor) ([]service.Expense, *service.ExpenseCursor, error)
}

// ListExpensesHandler handles GET /api/v1/expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/api/v1/expenses",
		Summary:     "List expenses",
		Description: "Returns the caller's expenses, optionally filtered by date, date range and category name.",
		Tags:        []string{"Expenses"},
		Security:    auth.Security(),
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	criteria, err := filter.ParseExpenseParams(filter.ExpenseParams{
		Date:     input.Date,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Category: input.Category,
	})
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to list expenses")
	}

	cursor := &service.ExpenseCursor{Position: input.Position, Limit: input.Limit}
	expenses, nextCursor, err := h.ExpenseService.ListExpenses(ctx, ownerID, criteria, cursor)
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to list expenses")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("expenseCount", len(expenses))
		logData.AddData("filtered", !criteria.IsEmpty())
	}

	resp := ListExpensesResponseBody{
		Expenses: make([]Expense, len(expenses)),
	}
	for i := range expenses {
		resp.Expenses[i] = fromService(&expenses[i])
	}

	if nextCursor != nil {
		resp.NextCursor = &ListExpensesCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListExpensesOutput{Body: resp}, nil
}
