package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

func TestListCategories(t *testing.T) {
	mockTable := sqlconfig.NewMockICategoryTable(t)
	svc := NewCategoryService(&storage.Storage{Categories: mockTable}, operator.NewMockProcessor(t))

	mockTable.EXPECT().List(mock.Anything).Return([]*sqlconfig.Category{
		{ID: 2, Name: "Food"},
		{ID: 1, Name: "Travel"},
	}, nil)

	categories, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []Category{{ID: 2, Name: "Food"}, {ID: 1, Name: "Travel"}}, categories)
}

func TestListCategories_StorageError(t *testing.T) {
	mockTable := sqlconfig.NewMockICategoryTable(t)
	svc := NewCategoryService(&storage.Storage{Categories: mockTable}, operator.NewMockProcessor(t))

	mockTable.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.ListCategories(context.Background())
	assert.Error(t, err)
}

func TestCategoryWrites(t *testing.T) {
	mockOperator := operator.NewMockProcessor(t)
	svc := NewCategoryService(&storage.Storage{}, mockOperator)

	mockOperator.EXPECT().Process(mock.Anything, mock.AnythingOfType("*actions.CreateCategory")).
		RunAndReturn(func(_ context.Context, action actions.IAction) error {
			action.(*actions.CreateCategory).CreatedID = 3
			return nil
		})
	mockOperator.EXPECT().Process(mock.Anything, &actions.RenameCategory{ID: 3, Name: "Trips"}).Return(nil)
	mockOperator.EXPECT().Process(mock.Anything, &actions.DeleteCategory{ID: 4}).Return(actions.ErrNotFound)

	id, err := svc.CreateCategory(context.Background(), "Travel")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	assert.NoError(t, svc.RenameCategory(context.Background(), 3, "Trips"))
	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), 4), ErrNotFound)
}

func TestUserService(t *testing.T) {
	mockTable := sqlconfig.NewMockIUserTable(t)
	mockOperator := operator.NewMockProcessor(t)
	svc := NewUserService(&storage.Storage{Users: mockTable}, mockOperator)

	mockTable.EXPECT().FindByID(mock.Anything, int64(1)).Return(&sqlconfig.User{ID: 1, Email: "ada@example.com"}, nil)
	mockTable.EXPECT().FindByID(mock.Anything, int64(2)).Return(nil, nil)
	mockOperator.EXPECT().Process(mock.Anything, mock.AnythingOfType("*actions.CreateUser")).
		RunAndReturn(func(_ context.Context, action actions.IAction) error {
			create := action.(*actions.CreateUser)
			assert.Equal(t, "ada@example.com", create.Create.Email)
			create.CreatedID = 1
			return nil
		})
	mockOperator.EXPECT().Process(mock.Anything, &actions.DeleteUser{ID: 1}).Return(nil)

	user, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = svc.GetUser(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)

	id, err := svc.CreateUser(context.Background(), User{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	assert.NoError(t, svc.DeleteUser(context.Background(), 1))
}
