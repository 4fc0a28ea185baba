package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/expense-server/internal/storage"
)

// ErrNotFound is returned when the targeted row does not exist, or exists but
// is not visible to the acting owner.
var ErrNotFound = errors.New("record not found")

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
