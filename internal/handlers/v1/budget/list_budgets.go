package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Page   int    `query:"page" minimum:"0" maximum:"1000000" doc:"Zero-based page number"`
	Size   int    `query:"size" minimum:"0" maximum:"100" doc:"Page size, default 20"`
	Filter string `query:"filter" maxLength:"100" doc:"Case-insensitive name substring"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	NextPage string `header:"X-Next-Page" doc:"Page number of the next page, absent on the last page"`
	Body     []Budget
}

type budgetLister interface {
	ListBudgets(ctx context.Context, query service.ListQuery) ([]service.Budget, bool, error)
}

// ListBudgetsHandler handles GET /api/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/api/budgets",
		Summary:     "List budgets",
		Description: "Returns a page of budgets ordered by name, with categories but without transactions.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	budgets, hasMore, err := h.BudgetService.ListBudgets(ctx, service.ListQuery{
		Page:   input.Page,
		Size:   input.Size,
		Filter: input.Filter,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to list budgets")
	}

	if logData != nil {
		logData.AddData("budgetCount", len(budgets))
	}

	resp := &ListBudgetsOutput{
		NextPage: httperr.NextPage(input.Page, hasMore),
		Body:     make([]Budget, len(budgets)),
	}
	for i := range budgets {
		resp.Body[i] = fromService(&budgets[i])
	}
	return resp, nil
}
