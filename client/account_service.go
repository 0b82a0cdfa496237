package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ninebudget/ninebudget/model"
)

// AccountService calls the /accounts endpoints.
type AccountService struct {
	t *transport
}

// List returns a page of accounts.
func (s *AccountService) List(ctx context.Context, opts ListOptions) ([]model.Account, error) {
	var accounts []model.Account
	if err := s.t.do(ctx, http.MethodGet, "/accounts", opts.values(), nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Get returns the account with the given id.
func (s *AccountService) Get(ctx context.Context, id int64) (model.Account, error) {
	var account model.Account
	err := s.t.do(ctx, http.MethodGet, fmt.Sprintf("/accounts/%d", id), nil, nil, &account)
	return account, err
}

// Create stores a new account and returns it as saved.
func (s *AccountService) Create(ctx context.Context, account model.Account) (model.Account, error) {
	var created model.Account
	err := s.t.do(ctx, http.MethodPut, "/accounts", nil, account, &created)
	return created, err
}

// Update replaces an existing account. account.ID must be set.
func (s *AccountService) Update(ctx context.Context, account model.Account) (model.Account, error) {
	if account.ID == nil {
		return model.Account{}, fmt.Errorf("update account: id is required")
	}
	var updated model.Account
	err := s.t.do(ctx, http.MethodPost, "/accounts", nil, account, &updated)
	return updated, err
}

// Delete removes the account with the given id.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.t.do(ctx, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), nil, nil, nil)
}
