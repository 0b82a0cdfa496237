package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ninebudget/ninebudget/model"
)

// BudgetService calls the /budgets endpoints.
type BudgetService struct {
	t *transport
}

// List returns a page of budgets.
func (s *BudgetService) List(ctx context.Context, opts ListOptions) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := s.t.do(ctx, http.MethodGet, "/budgets", opts.values(), nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// Get returns the budget with the given id, including its transactions.
func (s *BudgetService) Get(ctx context.Context, id int64) (model.Budget, error) {
	var budget model.Budget
	err := s.t.do(ctx, http.MethodGet, fmt.Sprintf("/budgets/%d", id), nil, nil, &budget)
	return budget, err
}

// Create stores a new budget and returns it as saved.
func (s *BudgetService) Create(ctx context.Context, budget model.Budget) (model.Budget, error) {
	var created model.Budget
	err := s.t.do(ctx, http.MethodPut, "/budgets", nil, budget, &created)
	return created, err
}

// Update replaces an existing budget. budget.ID must be set.
func (s *BudgetService) Update(ctx context.Context, budget model.Budget) (model.Budget, error) {
	if budget.ID == nil {
		return model.Budget{}, fmt.Errorf("update budget: id is required")
	}
	var updated model.Budget
	err := s.t.do(ctx, http.MethodPost, "/budgets", nil, budget, &updated)
	return updated, err
}

// Delete removes the budget with the given id.
func (s *BudgetService) Delete(ctx context.Context, id int64) error {
	return s.t.do(ctx, http.MethodDelete, fmt.Sprintf("/budgets/%d", id), nil, nil, nil)
}

// AddTransaction books tx against the budget and returns the updated budget.
func (s *BudgetService) AddTransaction(ctx context.Context, budgetID int64, tx model.Transaction) (model.Budget, error) {
	var budget model.Budget
	err := s.t.do(ctx, http.MethodPost, fmt.Sprintf("/budgets/%d/transactions", budgetID), nil, tx, &budget)
	return budget, err
}
