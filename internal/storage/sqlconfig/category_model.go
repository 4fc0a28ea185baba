package sqlconfig

import "context"

// Category represents a category record.
type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	Insert(ctx context.Context, name string) (int64, error)
	List(ctx context.Context) ([]*Category, error)
	Rename(ctx context.Context, id int64, name string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
