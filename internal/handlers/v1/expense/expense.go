package expense

import (
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/validation"
)

// TimestampLayout is RFC 3339 with the microsecond precision Postgres stores.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Expense is the API response model for an expense.
type Expense struct {
	ID           int64  `json:"id" readOnly:"true" doc:"Expense ID"`
	Category     int64  `json:"category" doc:"Category ID"`
	CategoryName string `json:"category_name" readOnly:"true" doc:"Name of the referenced category"`
	Description  string `json:"description" doc:"What the money was spent on"`
	Amount       string `json:"amount" doc:"Decimal amount with two fractional digits"`
	Date         string `json:"date" format:"date" doc:"Calendar date, YYYY-MM-DD"`
	CreatedAt    string `json:"created_at" format:"date-time" readOnly:"true" doc:"RFC3339 creation time, microsecond precision"`
	UpdatedAt    string `json:"updated_at" format:"date-time" readOnly:"true" doc:"RFC3339 last update time, microsecond precision"`
}

func fromService(e *service.Expense) Expense {
	return Expense{
		ID:           e.ID,
		Category:     e.CategoryID,
		CategoryName: e.CategoryName,
		Description:  e.Description,
		Amount:       e.Amount.StringFixed(validation.AmountDecimalPlaces),
		Date:         e.Date.Format(validation.DateLayout),
		CreatedAt:    e.CreatedAt.UTC().Format(TimestampLayout),
		UpdatedAt:    e.UpdatedAt.UTC().Format(TimestampLayout),
	}
}

// ExpenseOutput wraps a single expense response.
type ExpenseOutput struct {
	Body Expense
}
