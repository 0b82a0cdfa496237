package service

import (
	"strings"
	"time"

	"github.com/ninebudget/ninebudget/internal/storage/account"
	"github.com/ninebudget/ninebudget/model"
)

// Account represents an account in the service layer.
type Account struct {
	ID            int64
	Name          string
	Active        bool
	CategoryID    *int64
	BudgetID      *int64
	InstitutionID *int64
	CreatedAt     time.Time
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:            row.ID,
		Name:          row.Name,
		Active:        row.Active,
		CategoryID:    row.CategoryID,
		BudgetID:      row.BudgetID,
		InstitutionID: row.InstitutionID,
		CreatedAt:     row.CreatedAt,
	}
}

func accountToStorage(a model.Account) (*account.AccountCreate, error) {
	name := strings.TrimSpace(a.GetName())
	if name == "" {
		return nil, invalid("name", "is required")
	}
	return &account.AccountCreate{
		Name:          name,
		Active:        a.Active,
		CategoryID:    a.CategoryID,
		BudgetID:      a.BudgetID,
		InstitutionID: a.InstitutionID,
	}, nil
}
