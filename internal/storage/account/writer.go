package account

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/ninebudget/ninebudget/internal/storage/sqlconfig"
)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*Account, error) {
	return findByID(ctx, w.tx, id, true)
}

func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (int64, error) {
	q := psql.Insert(
		im.Into(sqlconfig.AccountsTable, "name", "active", "category_id", "budget_id", "institution_id"),
		im.Values(psql.Arg(create.Name, create.Active, create.CategoryID, create.BudgetID, create.InstitutionID)),
		im.Returning("id"),
	)

	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[int64])
}

// Update replaces every mutable column of the account.
func (w *Writer) Update(ctx context.Context, id int64, update *AccountCreate) error {
	q := psql.Update(
		um.Table(sqlconfig.AccountsTable),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("active").ToArg(update.Active),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("budget_id").ToArg(update.BudgetID),
		um.SetCol("institution_id").ToArg(update.InstitutionID),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := q.Exec(ctx, w.tx)
	if err != nil {
		return err
	}
	return sqlconfig.CheckAffected(result)
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	q := psql.Delete(
		dm.From(sqlconfig.AccountsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := q.Exec(ctx, w.tx)
	if err != nil {
		return err
	}
	return sqlconfig.CheckAffected(result)
}
