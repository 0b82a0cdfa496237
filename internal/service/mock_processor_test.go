package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ninebudget/ninebudget/internal/operator/actions"
	"github.com/ninebudget/ninebudget/internal/storage"
	"github.com/ninebudget/ninebudget/internal/storage/account"
	"github.com/ninebudget/ninebudget/internal/storage/budget"
	"github.com/ninebudget/ninebudget/internal/storage/category"
	"github.com/ninebudget/ninebudget/internal/storage/transaction"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

type testDeps struct {
	accounts     *account.MockIWriter
	budgets      *budget.MockIWriter
	transactions *transaction.MockIWriter
	categories   *category.MockIReader
	processor    *mockProcessor
}

func newTestDeps(t *testing.T) (*storage.Storage, testDeps) {
	t.Helper()
	d := testDeps{
		accounts:     account.NewMockIWriter(t),
		budgets:      budget.NewMockIWriter(t),
		transactions: transaction.NewMockIWriter(t),
		categories:   category.NewMockIReader(t),
		processor:    &mockProcessor{},
	}
	d.processor.Test(t)
	t.Cleanup(func() { d.processor.AssertExpectations(t) })

	store := &storage.Storage{
		Accounts:     d.accounts,
		Budgets:      d.budgets,
		Transactions: d.transactions,
		Categories:   d.categories,
	}
	return store, d
}
