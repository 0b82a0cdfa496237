package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents an amount recorded against a budget.
type Transaction struct {
	ID              int64           `db:"id"`
	BudgetID        int64           `db:"budget_id"`
	Name            string          `db:"name"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for recording a transaction.
type TransactionCreate struct {
	BudgetID        int64
	Name            string
	Amount          decimal.Decimal
	TransactionDate time.Time
}

type IReader interface {
	ListByBudget(ctx context.Context, budgetID int64) ([]*Transaction, error)
}

type IWriter interface {
	IReader
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
}
