package service

import (
	"context"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Category represents a category in the service layer.
type Category struct {
	ID   int64
	Name string
}

// CategoryService handles category business logic. Categories are global;
// writes are only reachable from admin tooling.
type CategoryService struct {
	storage  *storage.Storage
	operator operator.Processor
}

func NewCategoryService(store *storage.Storage, op operator.Processor) *CategoryService {
	return &CategoryService{storage: store, operator: op}
}

// ListCategories returns every category ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := logging.TimedTotal(logging.GetLogData(ctx), storageReadTiming, func() ([]*sqlconfig.Category, error) {
		return s.storage.Categories.List(ctx)
	})
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{ID: row.ID, Name: row.Name}
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (int64, error) {
	action := &actions.CreateCategory{Name: name}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.CreatedID, nil
}

func (s *CategoryService) RenameCategory(ctx context.Context, id int64, name string) error {
	return translateActionError(s.operator.Process(ctx, &actions.RenameCategory{ID: id, Name: name}))
}

// DeleteCategory also deletes every expense filed under the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return translateActionError(s.operator.Process(ctx, &actions.DeleteCategory{ID: id}))
}
