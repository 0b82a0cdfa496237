package category

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

func (r *Reader) FindByID(ctx context.Context, id int64) (*Category, error) {
	q := psql.Select(
		sm.Columns(sqlconfig.CategoryColumns...),
		sm.From(sqlconfig.CategoriesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, sqlconfig.NotFound(err)
	}
	return &row, nil
}

func (r *Reader) ListChildren(ctx context.Context, parentID int64) ([]*Category, error) {
	rows, err := bob.All(ctx, r.exec, listChildrenQuery(parentID), scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return sqlconfig.Pointers(rows), nil
}

func listChildrenQuery(parentID int64) bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(
		sm.Columns(sqlconfig.CategoryColumns...),
		sm.From(sqlconfig.CategoriesTable),
		sm.Where(psql.Quote("parent_id").EQ(psql.Arg(parentID))),
		sm.OrderBy("name").Asc(),
	)
}
