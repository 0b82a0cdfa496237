package category

import "context"

// Category groups budgets. Categories nest one level through ParentID.
type Category struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	ParentID *int64 `db:"parent_id"`
}

type IReader interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	ListChildren(ctx context.Context, parentID int64) ([]*Category, error)
}
