package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/service"
	"github.com/ninebudget/ninebudget/model"
)

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body BudgetBody
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, in model.Budget) (*service.Budget, error)
}

// CreateBudgetHandler handles PUT /api/budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPut,
		Path:          "/api/budgets",
		Summary:       "Create a budget",
		Description:   "Creates a new budget. Any id in the body is ignored.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*BudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	in, err := input.Body.toModel()
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	created, err := h.BudgetService.CreateBudget(ctx, in)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to create budget")
	}

	if logData != nil {
		logData.AddData("budgetID", created.ID)
	}

	return &BudgetOutput{Status: http.StatusCreated, Body: fromService(created)}, nil
}
