package expense

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/validation"
)

// ExpenseBody is the full writable field set, used by create and replace.
// Unknown properties such as owner or id are accepted and ignored.
type ExpenseBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Category    int64    `json:"category" required:"true" doc:"Category ID"`
	Description string   `json:"description" required:"true" minLength:"1" doc:"What the money was spent on"`
	Amount      Amount   `json:"amount" required:"true"`
	Date        string   `json:"date" required:"true" doc:"YYYY-MM-DD or DD-MM-YYYY"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body ExpenseBody
}

type expenseCreator interface {
	CreateExpense(ctx context.Context, ownerID int64, input service.ExpenseInput) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /api/v1/expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/api/v1/expenses",
		Summary:       "Create expense",
		Description:   "Creates an expense owned by the caller.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
		Security:      auth.Security(),
	}, h.handle)
}

// parseExpenseBody validates every field and reports all failures together.
func parseExpenseBody(body *ExpenseBody) (service.ExpenseInput, error) {
	vErr := validation.NewError(validation.LocationBody)

	if strings.TrimSpace(body.Description) == "" {
		vErr.Add("description", "This field may not be blank.", body.Description)
	}

	amount, msg := validation.ParseAmount(string(body.Amount))
	if msg != "" {
		vErr.Add("amount", msg, string(body.Amount))
	}

	date, ok := validation.ParseDate(body.Date)
	if !ok {
		vErr.Add("date", validation.InvalidDateMessage, body.Date)
	}

	if err := vErr.OrNil(); err != nil {
		return service.ExpenseInput{}, err
	}

	return service.ExpenseInput{
		CategoryID:  body.Category,
		Description: body.Description,
		Amount:      amount,
		Date:        date,
	}, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*ExpenseOutput, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expenseInput, err := parseExpenseBody(&input.Body)
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to create expense")
	}

	created, err := h.ExpenseService.CreateExpense(ctx, ownerID, expenseInput)
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to create expense")
	}

	return &ExpenseOutput{Body: fromService(created)}, nil
}
