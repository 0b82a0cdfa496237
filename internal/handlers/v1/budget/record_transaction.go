package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ninebudget/ninebudget/internal/handlers/httperr"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/service"
	"github.com/ninebudget/ninebudget/model"
)

// RecordTransactionInput is the Huma input for booking a transaction on a budget.
type RecordTransactionInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Budget id"`
	Body RecordTransactionBody
}

// RecordTransactionBody is the request body for booking a transaction.
type RecordTransactionBody struct {
	_               struct{}      `json:"-" additionalProperties:"true"`
	Name            *string       `json:"name,omitempty" doc:"Transaction description, required"`
	Amount          *model.Amount `json:"amount,omitempty" doc:"Amount added to the budget's amount spent, required. Negative for refunds"`
	TransactionDate *time.Time    `json:"transactionDate,omitempty" doc:"When the transaction happened, defaults to now"`
}

type transactionRecorder interface {
	RecordTransaction(ctx context.Context, budgetID int64, tx model.Transaction) (*service.Budget, error)
}

// RecordTransactionHandler handles POST /api/budgets/{id}/transactions.
type RecordTransactionHandler struct {
	BudgetService transactionRecorder
}

func NewRecordTransactionHandler(svc transactionRecorder) *RecordTransactionHandler {
	return &RecordTransactionHandler{BudgetService: svc}
}

func (h *RecordTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "record-budget-transaction",
		Method:      http.MethodPost,
		Path:        "/api/budgets/{id}/transactions",
		Summary:     "Record a transaction",
		Description: "Books a transaction against the budget and returns the updated budget.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *RecordTransactionHandler) handle(ctx context.Context, input *RecordTransactionInput) (*BudgetOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("budgetID", input.ID)
	}

	tx := model.Transaction{
		Name:            input.Body.Name,
		Amount:          cents(input.Body.Amount),
		TransactionDate: input.Body.TransactionDate,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("recordTransactionMs")
	}
	b, err := h.BudgetService.RecordTransaction(ctx, input.ID, tx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to record transaction")
	}
	return &BudgetOutput{Status: http.StatusOK, Body: fromService(b)}, nil
}
