package service

import (
	"context"

	"github.com/ninebudget/ninebudget/internal/operator/actions"
	"github.com/ninebudget/ninebudget/internal/storage"
)

// ActionProcessor runs an action inside a database transaction.
// *operator.OperatorDelegator satisfies it.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account *AccountService
	Budget  *BudgetService
}

// NewService creates a new Service with the given storage and action processor.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Account: NewAccountService(store, processor),
		Budget:  NewBudgetService(store, processor),
	}
}
