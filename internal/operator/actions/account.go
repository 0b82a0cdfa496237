package actions

import (
	"context"

	"github.com/ninebudget/ninebudget/internal/storage"
	"github.com/ninebudget/ninebudget/internal/storage/account"
)

type CreateAccount struct {
	Account account.AccountCreate

	// CreatedID is set once Perform succeeds.
	CreatedID int64
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Account.Insert(ctx, &c.Account)
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

type UpdateAccount struct {
	ID      int64
	Account account.AccountCreate
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Account.FindByIDForUpdate(ctx, u.ID); err != nil {
		return err
	}

	return writer.Account.Update(ctx, u.ID, &u.Account)
}

type DeleteAccount struct {
	ID int64
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Account.Delete(ctx, d.ID)
}
