package model

import (
	"time"
)

// Transaction is a single spend booked against a budget.
type Transaction struct {
	ID              *int64     `json:"id,omitempty"`
	Name            *string    `json:"name,omitempty"`
	Amount          *Amount    `json:"amount,omitempty"`
	TransactionDate *time.Time `json:"transactionDate,omitempty"`
	BudgetID        *int64     `json:"budgetId,omitempty"`
}

// Category groups accounts and budgets.
type Category struct {
	ID            *int64     `json:"id,omitempty"`
	Name          *string    `json:"name,omitempty"`
	SubCategories []Category `json:"subCategories,omitempty"`
}
