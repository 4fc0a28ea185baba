package expense

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/validation"
)

const notFoundMessage = "No Expense matches the given query."

// callerID returns the authenticated user or a 401.
func callerID(ctx context.Context) (int64, error) {
	principal := auth.PrincipalFrom(ctx)
	if principal == nil {
		return 0, huma.Error401Unauthorized(auth.ErrMissingToken.Error())
	}
	return principal.UserID, nil
}

// toHTTPError maps service errors onto problem responses. Unexpected errors
// are logged and hidden behind a generic 500.
func toHTTPError(ctx context.Context, err error, failure string) error {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return validationProblem(vErr)
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(notFoundMessage)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddError(err)
	}
	return huma.Error500InternalServerError(failure)
}

func validationProblem(vErr *validation.Error) error {
	details := make([]error, len(vErr.Fields))
	for i, f := range vErr.Fields {
		details[i] = &huma.ErrorDetail{
			Location: vErr.Location + "." + f.Field,
			Message:  f.Message,
			Value:    f.Value,
		}
	}
	return huma.Error422UnprocessableEntity("validation failed", details...)
}
