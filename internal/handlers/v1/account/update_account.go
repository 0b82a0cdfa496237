package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/service"
	"github.com/ninebudget/ninebudget/model"
)

// UpdateAccountInput is the Huma input for replacing an account.
type UpdateAccountInput struct {
	Body AccountBody
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, in model.Account) (*service.Account, error)
}

// UpdateAccountHandler handles POST /api/accounts.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPost,
		Path:        "/api/accounts",
		Summary:     "Update an account",
		Description: "Replaces the account identified by the id in the body.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*AccountOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil && input.Body.ID != nil {
		logData.AddData("accountID", *input.Body.ID)
	}

	updated, err := h.AccountService.UpdateAccount(ctx, input.Body.toModel())
	if err != nil {
		return nil, httperr.FromService(err, "failed to update account")
	}
	return &AccountOutput{Status: http.StatusOK, Body: fromService(updated)}, nil
}
