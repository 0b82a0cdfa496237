package transaction

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIWriter is a testify mock of IWriter. It also satisfies IReader.
type MockIWriter struct {
	mock.Mock
}

// NewMockIWriter creates a mock whose expectations are asserted when the test ends.
func NewMockIWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIWriter {
	m := &MockIWriter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIWriter) ListByBudget(ctx context.Context, budgetID int64) ([]*Transaction, error) {
	args := m.Called(ctx, budgetID)
	rows, _ := args.Get(0).([]*Transaction)
	return rows, args.Error(1)
}

func (m *MockIWriter) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}
