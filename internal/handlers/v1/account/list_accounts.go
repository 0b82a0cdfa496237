package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/service"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	Page   int    `query:"page" minimum:"0" maximum:"1000000" doc:"Zero-based page number"`
	Size   int    `query:"size" minimum:"0" maximum:"100" doc:"Page size, default 20"`
	Filter string `query:"filter" maxLength:"100" doc:"Case-insensitive name substring"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	NextPage string `header:"X-Next-Page" doc:"Page number of the next page, absent on the last page"`
	Body     []Account
}

type accountLister interface {
	ListAccounts(ctx context.Context, query service.ListQuery) ([]service.Account, bool, error)
}

// ListAccountsHandler handles GET /api/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/api/accounts",
		Summary:     "List accounts",
		Description: "Returns a page of accounts ordered by name.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	accounts, hasMore, err := h.AccountService.ListAccounts(ctx, service.ListQuery{
		Page:   input.Page,
		Size:   input.Size,
		Filter: input.Filter,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to list accounts")
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := &ListAccountsOutput{
		NextPage: httperr.NextPage(input.Page, hasMore),
		Body:     make([]Account, len(accounts)),
	}
	for i := range accounts {
		resp.Body[i] = fromService(&accounts[i])
	}
	return resp, nil
}
