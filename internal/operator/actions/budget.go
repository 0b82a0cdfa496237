package actions

import (
	"context"

	"github.com/ninebudget/ninebudget/internal/storage"
	"github.com/ninebudget/ninebudget/internal/storage/budget"
)

type CreateBudget struct {
	Budget budget.BudgetCreate

	// CreatedID is set once Perform succeeds.
	CreatedID int64
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Budget.Insert(ctx, &c.Budget)
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

type UpdateBudget struct {
	ID     int64
	Budget budget.BudgetCreate
}

func (u *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Budget.FindByIDForUpdate(ctx, u.ID); err != nil {
		return err
	}

	return writer.Budget.Update(ctx, u.ID, &u.Budget)
}

type DeleteBudget struct {
	ID int64
}

func (d *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Budget.Delete(ctx, d.ID)
}
