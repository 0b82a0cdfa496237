package model

// AccountFields is the optional-field contract of an account. Every field may
// be absent, which lets the same shape serve create payloads, partial updates
// and full API responses.
type AccountFields struct {
	ID            *int64
	Name          *string
	Active        *bool
	Users         []User
	CategoryID    *int64
	BudgetID      *int64
	InstitutionID *int64
}

// Account is a financial account linked to users, a category, a budget and an
// institution. Active is always a concrete boolean.
type Account struct {
	ID            *int64  `json:"id,omitempty"`
	Name          *string `json:"name,omitempty"`
	Active        bool    `json:"active"`
	Users         []User  `json:"users,omitempty"`
	CategoryID    *int64  `json:"categoryId,omitempty"`
	BudgetID      *int64  `json:"budgetId,omitempty"`
	InstitutionID *int64  `json:"institutionId,omitempty"`
}

// NewAccount builds an Account from f. Active falls back to false when it is
// missing or false; every other field is copied as given.
func NewAccount(f AccountFields) Account {
	return Account{
		ID:            f.ID,
		Name:          f.Name,
		Active:        orFalse(f.Active),
		Users:         f.Users,
		CategoryID:    f.CategoryID,
		BudgetID:      f.BudgetID,
		InstitutionID: f.InstitutionID,
	}
}

// Fields returns the optional-field view of a.
func (a Account) Fields() AccountFields {
	return AccountFields{
		ID:            a.ID,
		Name:          a.Name,
		Active:        Bool(a.Active),
		Users:         a.Users,
		CategoryID:    a.CategoryID,
		BudgetID:      a.BudgetID,
		InstitutionID: a.InstitutionID,
	}
}

// GetName returns the account name or "" when it is unset.
func (a Account) GetName() string {
	return deref(a.Name)
}
