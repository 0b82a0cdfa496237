package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/ninebudget/ninebudget/internal/storage/sqlconfig"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListByBudget returns the budget's transactions, newest first.
func (r *Reader) ListByBudget(ctx context.Context, budgetID int64) ([]*Transaction, error) {
	rows, err := bob.All(ctx, r.exec, listByBudgetQuery(budgetID), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return sqlconfig.Pointers(rows), nil
}

func listByBudgetQuery(budgetID int64) bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(
		sm.Columns(sqlconfig.TransactionColumns...),
		sm.From(sqlconfig.TransactionsTable),
		sm.Where(psql.Quote("budget_id").EQ(psql.Arg(budgetID))),
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("id").Desc(),
	)
}
