package cli

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ninebudget/ninebudget/client"
	"github.com/ninebudget/ninebudget/model"
)

func (r *Runner) homeView() *cli.Command {
	return &cli.Command{
		Name:  "home",
		Usage: "overview of accounts and active budgets",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "refresh", Usage: "redraw at this interval until interrupted; redraws do not count as activity"},
		},
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}

			refresh := c.Duration("refresh")
			if refresh <= 0 {
				return r.renderHome(c.Context, api)
			}

			ctx, cancel := context.WithCancel(c.Context)
			defer cancel()
			go api.Keepalive.Run(ctx)

			if err := r.renderHome(ctx, api); err != nil {
				return err
			}

			// Redraws do not reset the idle timer.
			ticker := time.NewTicker(refresh)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
				if err := r.renderHome(client.Passive(ctx), api); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					return err
				}
			}
		},
	}
}

type homeData struct {
	accounts []model.Account
	budgets  []model.Budget
}

func loadHome(ctx context.Context, api *client.Client) (homeData, error) {
	var data homeData
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		accounts, err := api.Accounts.List(ctx, client.ListOptions{})
		data.accounts = accounts
		return err
	})
	group.Go(func() error {
		budgets, err := api.Budgets.List(ctx, client.ListOptions{})
		data.budgets = budgets
		return err
	})
	return data, group.Wait()
}

func (r *Runner) renderHome(ctx context.Context, api *client.Client) error {
	data, err := loadHome(ctx, api)
	if err != nil {
		return err
	}
	r.dump("accounts", data.accounts)
	r.dump("budgets", data.budgets)

	activeAccounts := 0
	for _, a := range data.accounts {
		if a.Active {
			activeAccounts++
		}
	}

	var active []model.Budget
	total, spent, carry := decimal.Zero, decimal.Zero, decimal.Zero
	for _, b := range data.budgets {
		if !b.Active {
			continue
		}
		active = append(active, b)
		total = total.Add(b.Amount.OrZero())
		spent = spent.Add(b.AmountSpent.OrZero())
		carry = carry.Add(b.Carryover())
	}

	r.printf("Accounts: %d (%d active)\n", len(data.accounts), activeAccounts)
	r.printf("Budgeted: %s  Spent: %s  Remaining: %s  Carryover: %s\n\n",
		money(total), money(spent), money(total.Sub(spent)), money(carry))
	if len(active) == 0 {
		r.printf("No active budgets.\n")
		return nil
	}
	return writeBudgets(r.Out, active)
}
