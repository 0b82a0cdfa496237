package account

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

func (m *MockIWriter) FindByID(ctx context.Context, id int64) (*Account, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Account)
	return row, args.Error(1)
}

func (m *MockIWriter) List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error) {
	args := m.Called(ctx, filter)
	result, _ := args.Get(0).(*AccountListResult)
	return result, args.Error(1)
}

func (m *MockIWriter) FindByIDForUpdate(ctx context.Context, id int64) (*Account, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Account)
	return row, args.Error(1)
}

func (m *MockIWriter) Insert(ctx context.Context, create *AccountCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIWriter) Update(ctx context.Context, id int64, update *AccountCreate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockIWriter) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
