package budget

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

func (r *Reader) List(ctx context.Context, filter *BudgetFilter) (*BudgetListResult, error) {
	page := listPage(filter)

	rows, err := bob.All(ctx, r.exec, listQuery(page), scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}

	keep, hasMore := page.Trim(len(rows))
	return &BudgetListResult{Budgets: sqlconfig.Pointers(rows[:keep]), HasMore: hasMore}, nil
}

func listPage(filter *BudgetFilter) sqlconfig.ListPage {
	if filter == nil {
		return sqlconfig.NewListPage("", 0, 0)
	}
	return sqlconfig.NewListPage(filter.Name, filter.Limit, filter.Offset)
}

// listQuery orders by name. Ties on name are broken by id.
func listQuery(page sqlconfig.ListPage) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(sqlconfig.BudgetColumns...),
		sm.From(sqlconfig.BudgetsTable),
		sm.Limit(page.Fetch()),
		sm.Offset(page.Offset),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	}
	if pattern := page.NamePattern(); pattern != "" {
		queryMods = append(queryMods, sm.Where(psql.Raw("name ILIKE ?", pattern)))
	}
	return psql.Select(queryMods...)
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Budget, error) {
	return findByID(ctx, r.exec, id, false)
}

func findByID(ctx context.Context, exec bob.Executor, id int64, forUpdate bool) (*Budget, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(sqlconfig.BudgetColumns...),
		sm.From(sqlconfig.BudgetsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, exec, psql.Select(queryMods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, sqlconfig.NotFound(err)
	}
	return &row, nil
}
