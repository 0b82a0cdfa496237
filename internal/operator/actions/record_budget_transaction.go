package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ninebudget/ninebudget/internal/storage"
	"github.com/ninebudget/ninebudget/internal/storage/transaction"
)

// RecordBudgetTransaction stores a transaction and adds its amount to the
// budget's amount spent. The budget row stays locked until commit. A refund
// is a negative amount and can take the amount spent below zero.
type RecordBudgetTransaction struct {
	BudgetID        int64
	Name            string
	Amount          decimal.Decimal
	TransactionDate time.Time

	// CreatedID is set once Perform succeeds.
	CreatedID int64
}

func (r *RecordBudgetTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	b, err := writer.Budget.FindByIDForUpdate(ctx, r.BudgetID)
	if err != nil {
		return err
	}

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		BudgetID:        r.BudgetID,
		Name:            r.Name,
		Amount:          r.Amount,
		TransactionDate: r.TransactionDate,
	})
	if err != nil {
		return err
	}

	if err = writer.Budget.UpdateAmountSpent(ctx, r.BudgetID, b.AmountSpent.Add(r.Amount)); err != nil {
		return err
	}

	r.CreatedID = id
	return nil
}
