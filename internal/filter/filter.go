// Package filter turns the expense list query parameters into storage
// criteria.
package filter

import (
	"strings"
	"time"

	"github.com/carson-networks/expense-server/internal/validation"
)

// ExpenseParams are the raw, optional query values recognised on the list
// endpoint. Empty means not supplied.
type ExpenseParams struct {
	Date     string
	DateFrom string
	DateTo   string
	Category string
}

// ExpenseCriteria are the predicates applied to an owner's expenses; nil
// fields do not constrain. All set fields are combined with AND.
type ExpenseCriteria struct {
	Date         *time.Time
	DateFrom     *time.Time
	DateTo       *time.Time
	CategoryName *string
}

// ParseExpenseParams validates every supplied parameter and reports all
// malformed ones together, each named by its query parameter.
func ParseExpenseParams(params ExpenseParams) (ExpenseCriteria, error) {
	var criteria ExpenseCriteria
	vErr := validation.NewError(validation.LocationQuery)

	criteria.Date = parseDateParam(vErr, "date", params.Date)
	criteria.DateFrom = parseDateParam(vErr, "date_from", params.DateFrom)
	criteria.DateTo = parseDateParam(vErr, "date_to", params.DateTo)

	if name := strings.TrimSpace(params.Category); name != "" {
		criteria.CategoryName = &name
	}

	if err := vErr.OrNil(); err != nil {
		return ExpenseCriteria{}, err
	}
	return criteria, nil
}

func parseDateParam(vErr *validation.Error, name, value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, ok := validation.ParseDate(value)
	if !ok {
		vErr.Add(name, validation.InvalidDateMessage, value)
		return nil
	}
	return &parsed
}

// IsEmpty reports whether no predicate is set.
func (c ExpenseCriteria) IsEmpty() bool {
	return c.Date == nil && c.DateFrom == nil && c.DateTo == nil && c.CategoryName == nil
}
