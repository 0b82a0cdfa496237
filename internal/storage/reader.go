package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/ninebudget/ninebudget/internal/storage/account"
	"github.com/ninebudget/ninebudget/internal/storage/budget"
	"github.com/ninebudget/ninebudget/internal/storage/category"
	"github.com/ninebudget/ninebudget/internal/storage/transaction"
)

type Reader struct {
	Accounts     *account.Reader
	Budgets      *budget.Reader
	Transactions *transaction.Reader
	Categories   *category.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Budgets:      budget.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Categories:   category.NewReader(exec),
	}
}
