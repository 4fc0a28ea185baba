package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

func (t *UsersTable) FindByID(ctx context.Context, id int64) (*User, error) {
	query := psql.Select(
		sm.Columns("id", "email", "first_name", "last_name", "created_at"),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a user with a normalised (lower-cased) email and returns its ID.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (int64, error) {
	query := psql.Insert(
		im.Into("users", "email", "first_name", "last_name"),
		im.Values(psql.Arg(strings.ToLower(strings.TrimSpace(create.Email)), create.FirstName, create.LastName)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

// Delete removes a user; the foreign key cascades to the user's expenses.
func (t *UsersTable) Delete(ctx context.Context, id int64) (bool, error) {
	query := psql.Delete(
		dm.From("users"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffected(ctx, t.exec, query)
}
