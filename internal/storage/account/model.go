package account

import (
	"context"
	"time"
)

// Account represents an account record.
type Account struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Active        bool      `db:"active"`
	CategoryID    *int64    `db:"category_id"`
	BudgetID      *int64    `db:"budget_id"`
	InstitutionID *int64    `db:"institution_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Name   string
	Limit  int
	Offset int
}

// AccountListResult contains a page of accounts and whether another page follows.
type AccountListResult struct {
	Accounts []*Account
	HasMore  bool
}

// AccountCreate is the input for creating or replacing an account.
type AccountCreate struct {
	Name          string
	Active        bool
	CategoryID    *int64
	BudgetID      *int64
	InstitutionID *int64
}

type IReader interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error)
}

type IWriter interface {
	IReader
	FindByIDForUpdate(ctx context.Context, id int64) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (int64, error)
	Update(ctx context.Context, id int64, update *AccountCreate) error
	Delete(ctx context.Context, id int64) error
}
