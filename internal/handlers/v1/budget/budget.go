package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ninebudget/ninebudget/internal/service"
	"github.com/ninebudget/ninebudget/model"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID           int64         `json:"id" doc:"Budget id"`
	Name         string        `json:"name" doc:"Budget name"`
	Amount       model.Amount  `json:"amount" doc:"Target amount for one period"`
	AmountSpent  model.Amount  `json:"amountSpent" doc:"Amount spent in the current period. Negative after refunds"`
	BudgetTiming *string       `json:"budgetTiming,omitempty" doc:"How often the budget resets"`
	UseLeftOver  bool          `json:"useLeftOver" doc:"Whether unspent amounts carry over"`
	Active       bool          `json:"active" doc:"Whether the budget is active"`
	AccountID    *string       `json:"accountId,omitempty" doc:"Owning account UUID"`
	Category     *Category     `json:"category,omitempty" doc:"Budget category"`
	Transactions []Transaction `json:"transactions,omitempty" doc:"Transactions, newest first. Only included for single budgets"`
}

type Category struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	SubCategories []Category `json:"subCategories,omitempty"`
}

type Transaction struct {
	ID              int64        `json:"id"`
	BudgetID        int64        `json:"budgetId"`
	Name            string       `json:"name"`
	Amount          model.Amount `json:"amount"`
	TransactionDate time.Time    `json:"transactionDate"`
}

// BudgetBody is the request body for creating or replacing a budget.
// Fields the server derives, such as transactions, are accepted and ignored.
type BudgetBody struct {
	_            struct{}      `json:"-" additionalProperties:"true"`
	ID           *int64        `json:"id,omitempty" doc:"Budget id, required when updating"`
	Name         *string       `json:"name,omitempty" doc:"Budget name, required"`
	Amount       *model.Amount `json:"amount,omitempty" doc:"Target amount, required and not negative"`
	AmountSpent  *model.Amount `json:"amountSpent,omitempty" doc:"Amount spent so far, 0 when absent. Negative after refunds"`
	BudgetTiming *string       `json:"budgetTiming,omitempty" enum:"WEEKLY,BIWEEKLY,MONTHLY,QUARTERLY,YEARLY" doc:"How often the budget resets"`
	UseLeftOver  *bool         `json:"useLeftOver,omitempty" doc:"Carry unspent amounts over, false when absent"`
	Active       *bool         `json:"active,omitempty" doc:"Whether the budget is active, false when absent"`
	AccountID    *string       `json:"accountId,omitempty" format:"uuid" doc:"Owning account UUID"`
	Category     *CategoryRef  `json:"category,omitempty" doc:"Category, matched by id"`
}

// CategoryRef references an existing category.
type CategoryRef struct {
	_  struct{} `json:"-" additionalProperties:"true"`
	ID *int64   `json:"id,omitempty"`
}

func (b BudgetBody) toModel() (model.Budget, error) {
	fields := model.BudgetFields{
		ID:          b.ID,
		Name:        b.Name,
		Amount:      cents(b.Amount),
		AmountSpent: cents(b.AmountSpent),
		UseLeftOver: b.UseLeftOver,
		Active:      b.Active,
	}
	if b.BudgetTiming != nil {
		timing := model.BudgetTiming(*b.BudgetTiming)
		fields.BudgetTiming = &timing
	}
	if b.AccountID != nil {
		id, err := uuid.FromString(*b.AccountID)
		if err != nil {
			return model.Budget{}, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
		}
		fields.AccountID = &id
	}
	if b.Category != nil {
		fields.Category = &model.Category{ID: b.Category.ID}
	}
	return model.NewBudget(fields), nil
}

// cents rounds a to the two decimal places the database keeps.
func cents(a *model.Amount) *model.Amount {
	if a == nil {
		return nil
	}
	return model.NewAmount(a.Round(2))
}

func fromService(b *service.Budget) Budget {
	resp := Budget{
		ID:          b.ID,
		Name:        b.Name,
		Amount:      model.Amount{Decimal: b.Amount},
		AmountSpent: model.Amount{Decimal: b.AmountSpent},
		UseLeftOver: b.UseLeftOver,
		Active:      b.Active,
	}
	if b.BudgetTiming != nil {
		timing := string(*b.BudgetTiming)
		resp.BudgetTiming = &timing
	}
	if b.AccountID != nil {
		id := b.AccountID.String()
		resp.AccountID = &id
	}
	if b.Category != nil {
		c := categoryFromService(*b.Category)
		resp.Category = &c
	}
	for _, tx := range b.Transactions {
		resp.Transactions = append(resp.Transactions, Transaction{
			ID:              tx.ID,
			BudgetID:        tx.BudgetID,
			Name:            tx.Name,
			Amount:          model.Amount{Decimal: tx.Amount},
			TransactionDate: tx.TransactionDate,
		})
	}
	return resp
}

func categoryFromService(c service.Category) Category {
	resp := Category{ID: c.ID, Name: c.Name}
	for _, sub := range c.SubCategories {
		resp.SubCategories = append(resp.SubCategories, categoryFromService(sub))
	}
	return resp
}

// BudgetIDInput addresses one budget by path parameter.
type BudgetIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Budget id"`
}

// BudgetOutput wraps a single budget.
type BudgetOutput struct {
	Status int
	Body   Budget
}

// BudgetService is the subset of the service layer the budget handlers use.
type BudgetService interface {
	ListBudgets(ctx context.Context, query service.ListQuery) ([]service.Budget, bool, error)
	GetBudget(ctx context.Context, id int64) (*service.Budget, error)
	CreateBudget(ctx context.Context, in model.Budget) (*service.Budget, error)
	UpdateBudget(ctx context.Context, in model.Budget) (*service.Budget, error)
	DeleteBudget(ctx context.Context, id int64) error
	RecordTransaction(ctx context.Context, budgetID int64, tx model.Transaction) (*service.Budget, error)
}

// RegisterAll registers every budget endpoint.
func RegisterAll(api huma.API, svc BudgetService) {
	NewListBudgetsHandler(svc).Register(api)
	NewGetBudgetHandler(svc).Register(api)
	NewCreateBudgetHandler(svc).Register(api)
	NewUpdateBudgetHandler(svc).Register(api)
	NewDeleteBudgetHandler(svc).Register(api)
	NewRecordTransactionHandler(svc).Register(api)
}
