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

type ReplaceExpenseInput struct {
	ID   int64 `path:"id" doc:"Expense ID"`
	Body ExpenseBody
}

// ExpensePatchBody lists the writable fields; absent ones are left as is.
type ExpensePatchBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Category    *int64   `json:"category,omitempty" doc:"Category ID"`
	Description *string  `json:"description,omitempty" minLength:"1" doc:"What the money was spent on"`
	Amount      *Amount  `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty" doc:"YYYY-MM-DD or DD-MM-YYYY"`
}

type PatchExpenseInput struct {
	ID   int64 `path:"id" doc:"Expense ID"`
	Body ExpensePatchBody
}

type expenseUpdater interface {
	ReplaceExpense(ctx context.Context, ownerID, id int64, input service.ExpenseInput) (*service.Expense, error)
	UpdateExpense(ctx context.Context, ownerID, id int64, patch service.ExpensePatch) (*service.Expense, error)
}

// UpdateExpenseHandler handles PUT and PATCH /api/v1/expenses/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// Register registers both the replace and the partial update endpoints.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "replace-expense",
		Method:      http.MethodPut,
		Path:        "/api/v1/expenses/{id}",
		Summary:     "Replace expense",
		Description: "Overwrites every writable field of one of the caller's expenses.",
		Tags:        []string{"Expenses"},
		Security:    auth.Security(),
	}, h.handleReplace)

	huma.Register(api, huma.Operation{
		OperationID: "patch-expense",
		Method:      http.MethodPatch,
		Path:        "/api/v1/expenses/{id}",
		Summary:     "Update expense",
		Description: "Changes the supplied fields of one of the caller's expenses.",
		Tags:        []string{"Expenses"},
		Security:    auth.Security(),
	}, h.handlePatch)
}

func (h *UpdateExpenseHandler) handleReplace(ctx context.Context, input *ReplaceExpenseInput) (*ExpenseOutput, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expenseInput, err := parseExpenseBody(&input.Body)
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to update expense")
	}

	updated, err := h.ExpenseService.ReplaceExpense(ctx, ownerID, input.ID, expenseInput)
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to update expense")
	}

	return &ExpenseOutput{Body: fromService(updated)}, nil
}

func parseExpensePatchBody(body *ExpensePatchBody) (service.ExpensePatch, error) {
	vErr := validation.NewError(validation.LocationBody)
	patch := service.ExpensePatch{
		CategoryID:  body.Category,
		Description: body.Description,
	}

	if body.Description != nil && strings.TrimSpace(*body.Description) == "" {
		vErr.Add("description", "This field may not be blank.", *body.Description)
	}

	if body.Amount != nil {
		amount, msg := validation.ParseAmount(string(*body.Amount))
		if msg != "" {
			vErr.Add("amount", msg, string(*body.Amount))
		} else {
			patch.Amount = &amount
		}
	}

	if body.Date != nil {
		date, ok := validation.ParseDate(*body.Date)
		if !ok {
			vErr.Add("date", validation.InvalidDateMessage, *body.Date)
		} else {
			patch.Date = &date
		}
	}

	if err := vErr.OrNil(); err != nil {
		return service.ExpensePatch{}, err
	}
	return patch, nil
}

func (h *UpdateExpenseHandler) handlePatch(ctx context.Context, input *PatchExpenseInput) (*ExpenseOutput, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	patch, err := parseExpensePatchBody(&input.Body)
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to update expense")
	}

	updated, err := h.ExpenseService.UpdateExpense(ctx, ownerID, input.ID, patch)
	if err != nil {
		return nil, toHTTPError(ctx, err, "failed to update expense")
	}

	return &ExpenseOutput{Body: fromService(updated)}, nil
}
