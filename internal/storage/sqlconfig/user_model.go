package sqlconfig

import (
	"context"
	"time"
)

// User is the identity subsystem's user row. Expenses reference it as owner.
type User struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at"`
}

// UserCreate is the input for creating a user from admin tooling.
type UserCreate struct {
	Email     string
	FirstName string
	LastName  string
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
