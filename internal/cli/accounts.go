package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/ninebudget/ninebudget/model"
)

func (r *Runner) accountsView() *cli.Command {
	return &cli.Command{
		Name:  "accounts",
		Usage: "list accounts, optionally creating one first",
		Flags: append(listFlags(),
			&cli.StringFlag{Name: "create", Usage: "create an active account with this name"},
		),
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}

			if name := c.String("create"); name != "" {
				created, err := api.Accounts.Create(c.Context, model.NewAccount(model.AccountFields{
					Name:   model.String(name),
					Active: model.Bool(true),
				}))
				if err != nil {
					return err
				}
				r.dump("account", created)
				r.printf("Created account %s (%s)\n\n", optInt(created.ID), created.GetName())
			}

			accounts, err := api.Accounts.List(c.Context, listOptions(c))
			if err != nil {
				return err
			}
			r.dump("accounts", accounts)
			return writeAccounts(r.Out, accounts)
		},
	}
}

func (r *Runner) accountDetailView() *cli.Command {
	return &cli.Command{
		Name:      "account-detail",
		Usage:     "show, edit or delete an account",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "rename the account"},
			&cli.BoolFlag{Name: "active", Usage: "set whether the account is active"},
			&cli.BoolFlag{Name: "delete", Usage: "delete the account"},
		},
		Action: func(c *cli.Context) error {
			id, err := idArg(c)
			if err != nil {
				return err
			}
			api, err := r.Client()
			if err != nil {
				return err
			}

			if c.Bool("delete") {
				if err := api.Accounts.Delete(c.Context, id); err != nil {
					return err
				}
				r.printf("Deleted account %d\n", id)
				return nil
			}

			account, err := api.Accounts.Get(c.Context, id)
			if err != nil {
				return err
			}
			if c.IsSet("name") || c.IsSet("active") {
				fields := account.Fields()
				if c.IsSet("name") {
					fields.Name = model.String(c.String("name"))
				}
				if c.IsSet("active") {
					fields.Active = model.Bool(c.Bool("active"))
				}
				if account, err = api.Accounts.Update(c.Context, model.NewAccount(fields)); err != nil {
					return err
				}
			}
			r.dump("account", account)

			r.printf("Account %s: %s\n", optInt(account.ID), account.GetName())
			r.printf("  Active:      %s\n", yesNo(account.Active))
			r.printf("  Category:    %s\n", optInt(account.CategoryID))
			r.printf("  Budget:      %s\n", optInt(account.BudgetID))
			r.printf("  Institution: %s\n", optInt(account.InstitutionID))
			return nil
		},
	}
}
