package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IExpenseTable = (*ExpensesTable)(nil)

var expenseColumns = []any{
	"e.id",
	"e.owner_id",
	"e.category_id",
	"c.name AS category_name",
	"e.description",
	"e.amount",
	"e.date",
	"e.created_at",
	"e.updated_at",
}

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

// NewExpensesTable binds the table to a database handle or transaction.
func NewExpensesTable(exec bob.Executor) *ExpensesTable {
	return &ExpensesTable{exec: exec}
}

func selectExpenses(ownerID int64, extra ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(expenseColumns...),
		sm.From("expenses AS e"),
		sm.InnerJoin("categories AS c").On(psql.Quote("c", "id").EQ(psql.Quote("e", "category_id"))),
		sm.Where(psql.Quote("e", "owner_id").EQ(psql.Arg(ownerID))),
	}
	return psql.Select(append(queryMods, extra...)...)
}

// FindByID retrieves one of the owner's expenses. It returns nil, nil when
// the id does not exist or belongs to someone else.
func (t *ExpensesTable) FindByID(ctx context.Context, id int64, ownerID int64) (*Expense, error) {
	query := selectExpenses(ownerID, sm.Where(psql.Quote("e", "id").EQ(psql.Arg(id))))

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new expense and returns its generated ID.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (int64, error) {
	query := psql.Insert(
		im.Into("expenses", "owner_id", "category_id", "description", "amount", "date"),
		im.Values(psql.Arg(create.OwnerID, create.CategoryID, create.Description, create.Amount, create.Date.Format("2006-01-02"))),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

// List returns the owner's expenses matching the filter, newest date first.
// One row beyond Limit is fetched so callers can tell whether a next page
// exists.
func (t *ExpensesTable) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]

	criteria := filter.Criteria
	if criteria.Date != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("e", "date").EQ(psql.Arg(criteria.Date.Format("2006-01-02")))))
	}
	if criteria.DateFrom != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("e", "date").GTE(psql.Arg(criteria.DateFrom.Format("2006-01-02")))))
	}
	if criteria.DateTo != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("e", "date").LTE(psql.Arg(criteria.DateTo.Format("2006-01-02")))))
	}
	if criteria.CategoryName != nil {
		queryMods = append(queryMods, sm.Where(psql.Raw("lower(c.name) = lower(?)", *criteria.CategoryName)))
	}

	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy("e.date").Desc(),
		sm.OrderBy("e.id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, selectExpenses(filter.OwnerID, queryMods...), scan.StructMapper[Expense]())
	if err != nil {
		return nil, err
	}
	result := make([]*Expense, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update applies the set fields to one of the owner's expenses and refreshes
// updated_at. It reports false when no such expense exists for the owner.
func (t *ExpensesTable) Update(ctx context.Context, id int64, ownerID int64, update *ExpenseUpdate) (bool, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("expenses"),
		um.SetCol("updated_at").To("GREATEST(now(), created_at)"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	}
	if update.CategoryID != nil {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(*update.CategoryID))
	}
	if update.Description != nil {
		queryMods = append(queryMods, um.SetCol("description").ToArg(*update.Description))
	}
	if update.Amount != nil {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(*update.Amount))
	}
	if update.Date != nil {
		queryMods = append(queryMods, um.SetCol("date").ToArg(update.Date.Format("2006-01-02")))
	}

	return execAffected(ctx, t.exec, psql.Update(queryMods...))
}

// Delete removes one of the owner's expenses. It reports false when no such
// expense exists for the owner.
func (t *ExpensesTable) Delete(ctx context.Context, id int64, ownerID int64) (bool, error) {
	query := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	return execAffected(ctx, t.exec, query)
}
