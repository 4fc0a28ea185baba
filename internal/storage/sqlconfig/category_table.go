package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves a category by primary key, or nil, nil when absent.
func (t *CategoriesTable) FindByID(ctx context.Context, id int64) (*Category, error) {
	query := psql.Select(
		sm.Columns("id", "name"),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Category]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, name string) (int64, error) {
	query := psql.Insert(
		im.Into("categories", "name"),
		im.Values(psql.Arg(name)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

// List returns every category ordered by name.
func (t *CategoriesTable) List(ctx context.Context) ([]*Category, error) {
	query := psql.Select(
		sm.Columns("id", "name"),
		sm.From("categories"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *CategoriesTable) Rename(ctx context.Context, id int64, name string) (bool, error) {
	query := psql.Update(
		um.Table("categories"),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffected(ctx, t.exec, query)
}

// Delete removes a category; the foreign key cascades to its expenses.
func (t *CategoriesTable) Delete(ctx context.Context, id int64) (bool, error) {
	query := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffected(ctx, t.exec, query)
}

func execAffected(ctx context.Context, exec bob.Executor, query bob.Query) (bool, error) {
	result, err := bob.Exec(ctx, exec, query)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
