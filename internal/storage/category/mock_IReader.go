package category

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIReader is a testify mock of IReader.
type MockIReader struct {
	mock.Mock
}

// NewMockIReader creates a mock whose expectations are asserted when the test ends.
func NewMockIReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIReader {
	m := &MockIReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIReader) FindByID(ctx context.Context, id int64) (*Category, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Category)
	return row, args.Error(1)
}

func (m *MockIReader) ListChildren(ctx context.Context, parentID int64) ([]*Category, error) {
	args := m.Called(ctx, parentID)
	rows, _ := args.Get(0).([]*Category)
	return rows, args.Error(1)
}
