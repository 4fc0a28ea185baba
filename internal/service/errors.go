package service

import (
	"errors"

	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// ErrNotFound covers both missing rows and rows owned by someone else.
var ErrNotFound = errors.New("not found")

func translateActionError(err error) error {
	if errors.Is(err, actions.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
