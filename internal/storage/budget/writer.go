package budget

import (
	"context"

	"github.com/shopspring/decimal"
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

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*Budget, error) {
	return findByID(ctx, w.tx, id, true)
}

func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (int64, error) {
	q := psql.Insert(
		im.Into(sqlconfig.BudgetsTable,
			"name", "amount", "amount_spent", "budget_timing",
			"use_left_over", "active", "account_id", "category_id",
		),
		im.Values(psql.Arg(
			create.Name, create.Amount, create.AmountSpent, create.BudgetTiming,
			create.UseLeftOver, create.Active, create.AccountID, create.CategoryID,
		)),
		im.Returning("id"),
	)

	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[int64])
}

// Update replaces every mutable column of the budget.
func (w *Writer) Update(ctx context.Context, id int64, update *BudgetCreate) error {
	q := psql.Update(
		um.Table(sqlconfig.BudgetsTable),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("amount_spent").ToArg(update.AmountSpent),
		um.SetCol("budget_timing").ToArg(update.BudgetTiming),
		um.SetCol("use_left_over").ToArg(update.UseLeftOver),
		um.SetCol("active").ToArg(update.Active),
		um.SetCol("account_id").ToArg(update.AccountID),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := q.Exec(ctx, w.tx)
	if err != nil {
		return err
	}
	return sqlconfig.CheckAffected(result)
}

func (w *Writer) UpdateAmountSpent(ctx context.Context, id int64, amountSpent decimal.Decimal) error {
	q := psql.Update(
		um.Table(sqlconfig.BudgetsTable),
		um.SetCol("amount_spent").ToArg(amountSpent),
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
		dm.From(sqlconfig.BudgetsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := q.Exec(ctx, w.tx)
	if err != nil {
		return err
	}
	return sqlconfig.CheckAffected(result)
}
