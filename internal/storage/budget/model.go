package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record.
type Budget struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	Amount       decimal.Decimal `db:"amount"`
	AmountSpent  decimal.Decimal `db:"amount_spent"`
	BudgetTiming *string         `db:"budget_timing"`
	UseLeftOver  bool            `db:"use_left_over"`
	Active       bool            `db:"active"`
	AccountID    *uuid.UUID      `db:"account_id"`
	CategoryID   *int64          `db:"category_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

// BudgetFilter specifies filters for listing budgets.
type BudgetFilter struct {
	Name   string
	Limit  int
	Offset int
}

// BudgetListResult contains a page of budgets and whether another page follows.
type BudgetListResult struct {
	Budgets []*Budget
	HasMore bool
}

// BudgetCreate is the input for creating or replacing a budget.
type BudgetCreate struct {
	Name         string
	Amount       decimal.Decimal
	AmountSpent  decimal.Decimal
	BudgetTiming *string
	UseLeftOver  bool
	Active       bool
	AccountID    *uuid.UUID
	CategoryID   *int64
}

type IReader interface {
	FindByID(ctx context.Context, id int64) (*Budget, error)
	List(ctx context.Context, filter *BudgetFilter) (*BudgetListResult, error)
}

type IWriter interface {
	IReader
	FindByIDForUpdate(ctx context.Context, id int64) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (int64, error)
	Update(ctx context.Context, id int64, update *BudgetCreate) error
	UpdateAmountSpent(ctx context.Context, id int64, amountSpent decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}
