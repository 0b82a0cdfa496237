package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ninebudget/ninebudget/internal/operator/actions"
	"github.com/ninebudget/ninebudget/internal/storage"
	"github.com/ninebudget/ninebudget/internal/storage/budget"
	"github.com/ninebudget/ninebudget/model"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage  *storage.Storage
	operator ActionProcessor
	now      func() time.Time
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, processor ActionProcessor) *BudgetService {
	return &BudgetService{storage: store, operator: processor, now: time.Now}
}

// ListBudgets returns one page of budgets with their categories, without transactions.
func (s *BudgetService) ListBudgets(ctx context.Context, query ListQuery) ([]Budget, bool, error) {
	limit, offset := query.limitOffset()

	result, err := s.storage.Budgets.List(ctx, &budget.BudgetFilter{
		Name:   query.Filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, false, err
	}

	categories := map[int64]*Category{}
	budgets := make([]Budget, len(result.Budgets))
	for i, row := range result.Budgets {
		budgets[i] = budgetFromStorage(row)
		if row.CategoryID == nil {
			continue
		}
		c, ok := categories[*row.CategoryID]
		if !ok {
			if c, err = s.loadCategory(ctx, *row.CategoryID, false); err != nil {
				return nil, false, err
			}
			categories[*row.CategoryID] = c
		}
		budgets[i].Category = c
	}
	return budgets, result.HasMore, nil
}

// GetBudget retrieves a budget by ID with its category tree and transactions.
func (s *BudgetService) GetBudget(ctx context.Context, id int64) (*Budget, error) {
	row, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b := budgetFromStorage(row)

	if row.CategoryID != nil {
		if b.Category, err = s.loadCategory(ctx, *row.CategoryID, true); err != nil {
			return nil, err
		}
	}

	txs, err := s.storage.Transactions.ListByBudget(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Transactions = make([]Transaction, len(txs))
	for i, tx := range txs {
		b.Transactions[i] = transactionFromStorage(tx)
	}
	return &b, nil
}

// CreateBudget stores a new budget. Any ID on the input is ignored.
func (s *BudgetService) CreateBudget(ctx context.Context, in model.Budget) (*Budget, error) {
	create, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateBudget{Budget: *create}
	if err = s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.GetBudget(ctx, action.CreatedID)
}

// UpdateBudget replaces the stored budget identified by in.ID.
func (s *BudgetService) UpdateBudget(ctx context.Context, in model.Budget) (*Budget, error) {
	if in.ID == nil {
		return nil, invalid("id", "is required for updates")
	}
	update, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	if err = s.operator.Process(ctx, &actions.UpdateBudget{ID: *in.ID, Budget: *update}); err != nil {
		return nil, err
	}
	return s.GetBudget(ctx, *in.ID)
}

// DeleteBudget removes a budget and its transactions.
func (s *BudgetService) DeleteBudget(ctx context.Context, id int64) error {
	return s.operator.Process(ctx, &actions.DeleteBudget{ID: id})
}

// RecordTransaction books tx against the budget and returns the updated budget.
// A missing transaction date means now.
func (s *BudgetService) RecordTransaction(ctx context.Context, budgetID int64, tx model.Transaction) (*Budget, error) {
	var name string
	if tx.Name != nil {
		name = strings.TrimSpace(*tx.Name)
	}
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if tx.Amount == nil {
		return nil, invalid("amount", "is required")
	}
	date := s.now()
	if tx.TransactionDate != nil {
		date = *tx.TransactionDate
	}

	action := &actions.RecordBudgetTransaction{
		BudgetID:        budgetID,
		Name:            name,
		Amount:          tx.Amount.Decimal,
		TransactionDate: date,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.GetBudget(ctx, budgetID)
}

func (s *BudgetService) prepare(ctx context.Context, in model.Budget) (*budget.BudgetCreate, error) {
	create, err := budgetToStorage(in)
	if err != nil {
		return nil, err
	}
	if create.CategoryID != nil {
		_, err = s.storage.Categories.FindByID(ctx, *create.CategoryID)
		if errors.Is(err, ErrNotFound) {
			return nil, invalid("category", "does not exist")
		}
		if err != nil {
			return nil, err
		}
	}
	return create, nil
}

func (s *BudgetService) loadCategory(ctx context.Context, id int64, withChildren bool) (*Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := categoryFromStorage(row)

	if withChildren {
		children, err := s.storage.Categories.ListChildren(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			c.SubCategories = append(c.SubCategories, *categoryFromStorage(child))
		}
	}
	return c, nil
}
