package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ninebudget/ninebudget/internal/storage/account"
	"github.com/ninebudget/ninebudget/internal/storage/budget"
	"github.com/ninebudget/ninebudget/internal/storage/transaction"
)

func TestWriter_CommitAndRollbackDelegate(t *testing.T) {
	tx := NewMockCommitter(t)
	accounts := account.NewMockIWriter(t)
	budgets := budget.NewMockIWriter(t)
	transactions := transaction.NewMockIWriter(t)

	w := NewWriterWith(tx, accounts, budgets, transactions)
	assert.Same(t, accounts, w.Account)
	assert.Same(t, budgets, w.Budget)
	assert.Same(t, transactions, w.Transaction)

	tx.On("Commit", mock.Anything).Return(nil).Once()
	tx.On("Rollback", mock.Anything).Return(errors.New("already committed")).Once()

	assert.NoError(t, w.Commit(context.Background()))
	assert.EqualError(t, w.Rollback(context.Background()), "already committed")
}
