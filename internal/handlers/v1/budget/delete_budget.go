package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
)

type budgetDeleter interface {
	DeleteBudget(ctx context.Context, id int64) error
}

// DeleteBudgetHandler handles DELETE /api/budgets/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/api/budgets/{id}",
		Summary:       "Delete a budget",
		Description:   "Deletes the budget and its transactions.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *BudgetIDInput) (*struct{}, error) {
	if err := h.BudgetService.DeleteBudget(ctx, input.ID); err != nil {
		return nil, httperr.FromService(err, "failed to delete budget")
	}
	return nil, nil
}
