package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ninebudget/ninebudget/internal/logging"
)

const pingTimeout = 2 * time.Second

// Pinger checks a dependency. *storage.Storage satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Database Pinger
}

func NewHandler(db Pinger) Handler {
	return Handler{Database: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.Database != nil {
		ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
		defer cancel()

		stopTimer := logData.AddTiming("databasePingMs")
		err := h.Database.Ping(ctx)
		stopTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return fmt.Errorf("status: database ping: %w", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
