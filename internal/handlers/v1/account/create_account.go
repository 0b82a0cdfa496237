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

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body AccountBody
}

type accountCreator interface {
	CreateAccount(ctx context.Context, in model.Account) (*service.Account, error)
}

// CreateAccountHandler handles PUT /api/accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPut,
		Path:          "/api/accounts",
		Summary:       "Create an account",
		Description:   "Creates a new account. Any id in the body is ignored.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*AccountOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	created, err := h.AccountService.CreateAccount(ctx, input.Body.toModel())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", created.ID)
	}

	return &AccountOutput{Status: http.StatusCreated, Body: fromService(created)}, nil
}
