package service

import (
	"context"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
}

// UserService manages identity rows from admin tooling.
type UserService struct {
	storage  *storage.Storage
	operator operator.Processor
}

func NewUserService(store *storage.Storage, op operator.Processor) *UserService {
	return &UserService{storage: store, operator: op}
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*User, error) {
	row, err := logging.TimedTotal(logging.GetLogData(ctx), storageReadTiming, func() (*sqlconfig.User, error) {
		return s.storage.Users.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return &User{ID: row.ID, Email: row.Email, FirstName: row.FirstName, LastName: row.LastName}, nil
}

func (s *UserService) CreateUser(ctx context.Context, user User) (int64, error) {
	action := &actions.CreateUser{
		Create: sqlconfig.UserCreate{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.CreatedID, nil
}

// DeleteUser also deletes all of the user's expenses.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return translateActionError(s.operator.Process(ctx, &actions.DeleteUser{ID: id}))
}
