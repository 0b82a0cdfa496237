package account

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/service"
	"github.com/ninebudget/ninebudget/model"
)

// Account is the API response model for an account. Users are not stored
// with accounts, so the response never carries a users list.
type Account struct {
	ID            int64  `json:"id" doc:"Account id"`
	Name          string `json:"name" doc:"Account name"`
	Active        bool   `json:"active" doc:"Whether the account is active"`
	CategoryID    *int64 `json:"categoryId,omitempty" doc:"Category the account belongs to"`
	BudgetID      *int64 `json:"budgetId,omitempty" doc:"Budget linked to the account"`
	InstitutionID *int64 `json:"institutionId,omitempty" doc:"Institution holding the account"`
}

const accountSchemaDoc = "An account. Users are not stored with accounts, so responses never include users."

func (Account) TransformSchema(_ huma.Registry, s *huma.Schema) *huma.Schema {
	s.Description = accountSchemaDoc
	return s
}

// AccountBody is the request body for creating or replacing an account.
// Fields the server does not store, such as users, are accepted and ignored.
type AccountBody struct {
	_             struct{} `json:"-" additionalProperties:"true"`
	ID            *int64   `json:"id,omitempty" doc:"Account id, required when updating"`
	Name          *string  `json:"name,omitempty" doc:"Account name, required"`
	Active        *bool    `json:"active,omitempty" doc:"Whether the account is active, false when absent"`
	CategoryID    *int64   `json:"categoryId,omitempty" doc:"Category the account belongs to"`
	BudgetID      *int64   `json:"budgetId,omitempty" doc:"Budget linked to the account"`
	InstitutionID *int64   `json:"institutionId,omitempty" doc:"Institution holding the account"`
}

func (b AccountBody) toModel() model.Account {
	return model.NewAccount(model.AccountFields{
		ID:            b.ID,
		Name:          b.Name,
		Active:        b.Active,
		CategoryID:    b.CategoryID,
		BudgetID:      b.BudgetID,
		InstitutionID: b.InstitutionID,
	})
}

func fromService(a *service.Account) Account {
	return Account{
		ID:            a.ID,
		Name:          a.Name,
		Active:        a.Active,
		CategoryID:    a.CategoryID,
		BudgetID:      a.BudgetID,
		InstitutionID: a.InstitutionID,
	}
}

// AccountIDInput addresses one account by path parameter.
type AccountIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Account id"`
}

// AccountOutput wraps a single account.
type AccountOutput struct {
	Status int
	Body   Account
}

// AccountService is the subset of the service layer the account handlers use.
type AccountService interface {
	ListAccounts(ctx context.Context, query service.ListQuery) ([]service.Account, bool, error)
	GetAccount(ctx context.Context, id int64) (*service.Account, error)
	CreateAccount(ctx context.Context, in model.Account) (*service.Account, error)
	UpdateAccount(ctx context.Context, in model.Account) (*service.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// RegisterAll registers every account endpoint.
func RegisterAll(api huma.API, svc AccountService) {
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewCreateAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
}
