// Package validation holds the field-level checks applied to expense input
// before it reaches storage, and the error type that reports them.
package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Location prefixes understood by the HTTP layer.
	LocationBody  = "body"
	LocationQuery = "query"

	// AmountDecimalPlaces and AmountMaxDigits mirror the NUMERIC(10,2) column.
	AmountDecimalPlaces = 2
	AmountMaxDigits     = 10

	DateLayout = "2006-01-02"

	InvalidDateMessage = "Enter a valid date. Use one of these formats: YYYY-MM-DD, DD-MM-YYYY."
)

// DateLayouts lists the accepted input layouts, tried in order.
var DateLayouts = []string{DateLayout, "02-01-2006"}

// FieldError describes one rejected field.
type FieldError struct {
	Field   string
	Message string
	Value   interface{}
}

// Error is a ValidationError: one or more rejected fields from a single
// request location.
type Error struct {
	Location string
	Fields   []FieldError
}

func NewError(location string) *Error {
	return &Error{Location: location}
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = e.Location + "." + f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Add(field, message string, value interface{}) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message, Value: value})
}

// OrNil returns nil when no field was rejected so callers can return it as an
// error without a typed-nil surprise.
func (e *Error) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldFailure is shorthand for a single-field Error.
func FieldFailure(location, field, message string, value interface{}) *Error {
	e := NewError(location)
	e.Add(field, message, value)
	return e
}

// ParseDate accepts YYYY-MM-DD or DD-MM-YYYY and returns midnight UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range DateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ParseAmount parses a decimal amount and enforces the column's precision.
// The returned message is empty on success.
func ParseAmount(raw string) (decimal.Decimal, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, "A valid number is required."
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, "A valid number is required."
	}

	return amount, CheckAmount(amount)
}

// CheckAmount reports why amount does not fit NUMERIC(10,2), or "".
func CheckAmount(amount decimal.Decimal) string {
	if -amount.Exponent() > AmountDecimalPlaces {
		return "Ensure that there are no more than 2 decimal places."
	}
	// Whole digits come from the coefficient and exponent alone. Rescaling a
	// value like 1e999999999 would allocate a coefficient of that many digits.
	if !amount.IsZero() && amount.NumDigits()+int(amount.Exponent()) > AmountMaxDigits-AmountDecimalPlaces {
		return "Ensure that there are no more than 8 digits before the decimal point."
	}
	return ""
}
