package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
	"github.com/ninebudget/ninebudget/internal/service"
)

type accountGetter interface {
	GetAccount(ctx context.Context, id int64) (*service.Account, error)
}

// GetAccountHandler handles GET /api/accounts/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*AccountOutput, error) {
	a, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, httperr.FromService(err, "failed to load account")
	}
	return &AccountOutput{Status: http.StatusOK, Body: fromService(a)}, nil
}
