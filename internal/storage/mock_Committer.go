package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCommitter is a testify mock of Committer.
type MockCommitter struct {
	mock.Mock
}

// NewMockCommitter creates a mock whose expectations are asserted when the test ends.
func NewMockCommitter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommitter {
	m := &MockCommitter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCommitter) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCommitter) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
