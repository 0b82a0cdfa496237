package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/ninebudget/ninebudget/internal/storage/account"
	"github.com/ninebudget/ninebudget/internal/storage/budget"
	"github.com/ninebudget/ninebudget/internal/storage/transaction"
)

// Committer ends a database transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the table writers that share one database transaction.
type Writer struct {
	tx          Committer
	Account     account.IWriter
	Budget      budget.IWriter
	Transaction transaction.IWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Account:     account.NewWriter(tx),
		Budget:      budget.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

// NewWriterWith builds a Writer from explicit parts.
func NewWriterWith(tx Committer, accounts account.IWriter, budgets budget.IWriter, transactions transaction.IWriter) *Writer {
	return &Writer{
		tx:          tx,
		Account:     accounts,
		Budget:      budgets,
		Transaction: transactions,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
