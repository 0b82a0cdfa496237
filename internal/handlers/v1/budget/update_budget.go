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

// UpdateBudgetInput is the Huma input for replacing a budget.
type UpdateBudgetInput struct {
	Body BudgetBody
}

type budgetUpdater interface {
	UpdateBudget(ctx context.Context, in model.Budget) (*service.Budget, error)
}

// UpdateBudgetHandler handles POST /api/budgets.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPost,
		Path:        "/api/budgets",
		Summary:     "Update a budget",
		Description: "Replaces the budget identified by the id in the body. Absent fields are reset.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*BudgetOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil && input.Body.ID != nil {
		logData.AddData("budgetID", *input.Body.ID)
	}

	in, err := input.Body.toModel()
	if err != nil {
		return nil, err
	}

	updated, err := h.BudgetService.UpdateBudget(ctx, in)
	if err != nil {
		return nil, httperr.FromService(err, "failed to update budget")
	}
	return &BudgetOutput{Status: http.StatusOK, Body: fromService(updated)}, nil
}
