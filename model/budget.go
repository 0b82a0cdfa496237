package model

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BudgetFields is the optional-field contract of a budget.
type BudgetFields struct {
	ID           *int64
	Name         *string
	Amount       *Amount
	AmountSpent  *Amount
	BudgetTiming *BudgetTiming
	UseLeftOver  *bool
	Active       *bool
	AccountID    *uuid.UUID
	Transactions []Transaction
	Category     *Category
}

// Budget is a spending limit tracking a target amount, the amount spent so far,
// its recurrence and the transactions booked against it.
type Budget struct {
	ID           *int64        `json:"id,omitempty"`
	Name         *string       `json:"name,omitempty"`
	Amount       *Amount       `json:"amount,omitempty"`
	AmountSpent  *Amount       `json:"amountSpent,omitempty"`
	BudgetTiming *BudgetTiming `json:"budgetTiming,omitempty"`
	UseLeftOver  bool          `json:"useLeftOver"`
	Active       bool          `json:"active"`
	AccountID    *uuid.UUID    `json:"accountId,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
	Category     *Category     `json:"category,omitempty"`
}

// NewBudget builds a Budget from f. UseLeftOver and Active fall back to false
// when missing or false; every other field is copied as given.
func NewBudget(f BudgetFields) Budget {
	return Budget{
		ID:           f.ID,
		Name:         f.Name,
		Amount:       f.Amount,
		AmountSpent:  f.AmountSpent,
		BudgetTiming: f.BudgetTiming,
		UseLeftOver:  orFalse(f.UseLeftOver),
		Active:       orFalse(f.Active),
		AccountID:    f.AccountID,
		Transactions: f.Transactions,
		Category:     f.Category,
	}
}

// Fields returns the optional-field view of b.
func (b Budget) Fields() BudgetFields {
	return BudgetFields{
		ID:           b.ID,
		Name:         b.Name,
		Amount:       b.Amount,
		AmountSpent:  b.AmountSpent,
		BudgetTiming: b.BudgetTiming,
		UseLeftOver:  Bool(b.UseLeftOver),
		Active:       Bool(b.Active),
		AccountID:    b.AccountID,
		Transactions: b.Transactions,
		Category:     b.Category,
	}
}

// GetName returns the budget name or "" when it is unset.
func (b Budget) GetName() string {
	return deref(b.Name)
}

// Remaining is the target amount minus the amount spent. Missing amounts count as zero.
func (b Budget) Remaining() decimal.Decimal {
	return b.Amount.OrZero().Sub(b.AmountSpent.OrZero())
}

// Carryover is the unspent amount that rolls into the next period. It is zero
// unless UseLeftOver is set, and never negative.
func (b Budget) Carryover() decimal.Decimal {
	if !b.UseLeftOver {
		return decimal.Zero
	}
	remaining := b.Remaining()
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
