package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/service"
)

type budgetGetter interface {
	GetBudget(ctx context.Context, id int64) (*service.Budget, error)
}

// GetBudgetHandler handles GET /api/budgets/{id}.
type GetBudgetHandler struct {
	BudgetService budgetGetter
}

func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/api/budgets/{id}",
		Summary:     "Get a budget",
		Description: "Returns the budget with its category tree and transactions.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *BudgetIDInput) (*BudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getBudgetMs")
	}
	b, err := h.BudgetService.GetBudget(ctx, input.ID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to load budget")
	}
	return &BudgetOutput{Status: http.StatusOK, Body: fromService(b)}, nil
}
