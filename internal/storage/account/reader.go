package account

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

func (r *Reader) List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error) {
	page := listPage(filter)

	rows, err := bob.All(ctx, r.exec, listQuery(page), scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}

	keep, hasMore := page.Trim(len(rows))
	return &AccountListResult{Accounts: sqlconfig.Pointers(rows[:keep]), HasMore: hasMore}, nil
}

func listPage(filter *AccountFilter) sqlconfig.ListPage {
	if filter == nil {
		return sqlconfig.NewListPage("", 0, 0)
	}
	return sqlconfig.NewListPage(filter.Name, filter.Limit, filter.Offset)
}

// listQuery orders by name. Ties on name are broken by id.
func listQuery(page sqlconfig.ListPage) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(sqlconfig.AccountColumns...),
		sm.From(sqlconfig.AccountsTable),
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

func (r *Reader) FindByID(ctx context.Context, id int64) (*Account, error) {
	return findByID(ctx, r.exec, id, false)
}

func findByID(ctx context.Context, exec bob.Executor, id int64, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(sqlconfig.AccountColumns...),
		sm.From(sqlconfig.AccountsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, sqlconfig.NotFound(err)
	}
	return &row, nil
}
