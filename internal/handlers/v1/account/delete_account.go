package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
)

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id int64) error
}

// DeleteAccountHandler handles DELETE /api/accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/api/accounts/{id}",
		Summary:       "Delete an account",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*struct{}, error) {
	if err := h.AccountService.DeleteAccount(ctx, input.ID); err != nil {
		return nil, httperr.FromService(err, "failed to delete account")
	}
	return nil, nil
}
