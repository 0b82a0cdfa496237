package service

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ninebudget/ninebudget/internal/storage/budget"
	"github.com/ninebudget/ninebudget/internal/storage/category"
	"github.com/ninebudget/ninebudget/internal/storage/transaction"
	"github.com/ninebudget/ninebudget/model"
)

// Budget represents a budget in the service layer.
type Budget struct {
	ID           int64
	Name         string
	Amount       decimal.Decimal
	AmountSpent  decimal.Decimal
	BudgetTiming *model.BudgetTiming
	UseLeftOver  bool
	Active       bool
	AccountID    *uuid.UUID
	Category     *Category
	Transactions []Transaction
	CreatedAt    time.Time
}

// Category is a budget category with its direct children.
type Category struct {
	ID            int64
	Name          string
	SubCategories []Category
}

// Transaction is an amount recorded against a budget.
type Transaction struct {
	ID              int64
	BudgetID        int64
	Name            string
	Amount          decimal.Decimal
	TransactionDate time.Time
}

func budgetFromStorage(row *budget.Budget) Budget {
	b := Budget{
		ID:          row.ID,
		Name:        row.Name,
		Amount:      row.Amount,
		AmountSpent: row.AmountSpent,
		UseLeftOver: row.UseLeftOver,
		Active:      row.Active,
		AccountID:   row.AccountID,
		CreatedAt:   row.CreatedAt,
	}
	if row.BudgetTiming != nil {
		// Rows written before validation existed may hold unknown values; they are dropped.
		if timing, err := model.ParseBudgetTiming(*row.BudgetTiming); err == nil {
			b.BudgetTiming = timing.Timing()
		}
	}
	return b
}

func categoryFromStorage(row *category.Category) *Category {
	return &Category{ID: row.ID, Name: row.Name}
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		BudgetID:        row.BudgetID,
		Name:            row.Name,
		Amount:          row.Amount,
		TransactionDate: row.TransactionDate,
	}
}

func budgetToStorage(b model.Budget) (*budget.BudgetCreate, error) {
	name := strings.TrimSpace(b.GetName())
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if b.Amount == nil {
		return nil, invalid("amount", "is required")
	}
	if b.Amount.IsNegative() {
		return nil, invalid("amount", "must not be negative")
	}
	// AmountSpent may be negative once refunds exceed spending.

	create := &budget.BudgetCreate{
		Name:        name,
		Amount:      b.Amount.Decimal,
		AmountSpent: b.AmountSpent.OrZero(),
		UseLeftOver: b.UseLeftOver,
		Active:      b.Active,
		AccountID:   b.AccountID,
	}
	if b.BudgetTiming != nil {
		timing, err := model.ParseBudgetTiming(string(*b.BudgetTiming))
		if err != nil {
			return nil, invalid("budgetTiming", err.Error())
		}
		s := string(timing)
		create.BudgetTiming = &s
	}
	if b.Category != nil && b.Category.ID != nil {
		create.CategoryID = b.Category.ID
	}
	return create, nil
}
