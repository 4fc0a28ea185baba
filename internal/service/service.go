package service

import (
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/storage"
)

// storageReadTiming totals the time a request spends in storage reads.
const storageReadTiming = "storageReadMs"

// Service holds all business logic services.
type Service struct {
	Expense  *ExpenseService
	Category *CategoryService
	User     *UserService
}

// NewService creates a new Service reading from store and writing through op.
func NewService(store *storage.Storage, op operator.Processor) *Service {
	return &Service{
		Expense:  NewExpenseService(store, op),
		Category: NewCategoryService(store, op),
		User:     NewUserService(store, op),
	}
}
