package actions

import (
	"context"

	"github.com/ninebudget/ninebudget/internal/storage"
)

// IAction is a unit of work run inside one database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
