package service

import (
	"context"
	"errors"

	"github.com/ninebudget/ninebudget/internal/operator/actions"
	"github.com/ninebudget/ninebudget/internal/storage"
	"github.com/ninebudget/ninebudget/internal/storage/account"
	"github.com/ninebudget/ninebudget/model"
)

// AccountService handles account business logic.
type AccountService struct {
	storage  *storage.Storage
	operator ActionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor ActionProcessor) *AccountService {
	return &AccountService{storage: store, operator: processor}
}

// ListAccounts returns one page of accounts and whether another page follows.
func (s *AccountService) ListAccounts(ctx context.Context, query ListQuery) ([]Account, bool, error) {
	limit, offset := query.limitOffset()

	result, err := s.storage.Accounts.List(ctx, &account.AccountFilter{
		Name:   query.Filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, false, err
	}

	accounts := make([]Account, len(result.Accounts))
	for i, row := range result.Accounts {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, result.HasMore, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a := accountFromStorage(row)
	return &a, nil
}

// CreateAccount stores a new account. Any ID on the input is ignored.
func (s *AccountService) CreateAccount(ctx context.Context, in model.Account) (*Account, error) {
	create, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{Account: *create}
	if err = s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.GetAccount(ctx, action.CreatedID)
}

// UpdateAccount replaces the stored account identified by in.ID.
func (s *AccountService) UpdateAccount(ctx context.Context, in model.Account) (*Account, error) {
	if in.ID == nil {
		return nil, invalid("id", "is required for updates")
	}
	update, err := s.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	if err = s.operator.Process(ctx, &actions.UpdateAccount{ID: *in.ID, Account: *update}); err != nil {
		return nil, err
	}
	return s.GetAccount(ctx, *in.ID)
}

// DeleteAccount removes an account.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.operator.Process(ctx, &actions.DeleteAccount{ID: id})
}

func (s *AccountService) prepare(ctx context.Context, in model.Account) (*account.AccountCreate, error) {
	create, err := accountToStorage(in)
	if err != nil {
		return nil, err
	}
	if create.CategoryID != nil {
		_, err = s.storage.Categories.FindByID(ctx, *create.CategoryID)
		if errors.Is(err, ErrNotFound) {
			return nil, invalid("categoryId", "does not exist")
		}
		if err != nil {
			return nil, err
		}
	}
	return create, nil
}
