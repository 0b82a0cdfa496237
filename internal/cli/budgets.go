package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/urfave/cli/v2"

	"github.com/ninebudget/ninebudget/client"
	"github.com/ninebudget/ninebudget/model"
)

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "zero-based page"},
		&cli.IntFlag{Name: "size", Usage: "page size"},
		&cli.StringFlag{Name: "filter", Usage: "name substring"},
	}
}

func listOptions(c *cli.Context) client.ListOptions {
	return client.ListOptions{Page: c.Int("page"), Size: c.Int("size"), Filter: c.String("filter")}
}

func idArg(c *cli.Context) (int64, error) {
	raw := c.Args().First()
	if raw == "" {
		return 0, errors.New("an id argument is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func (r *Runner) budgetsView() *cli.Command {
	return &cli.Command{
		Name:  "budgets",
		Usage: "list budgets",
		Flags: listFlags(),
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}
			budgets, err := api.Budgets.List(c.Context, listOptions(c))
			if err != nil {
				return err
			}
			r.dump("budgets", budgets)
			return writeBudgets(r.Out, budgets)
		},
	}
}

func (r *Runner) budgetNewView() *cli.Command {
	return &cli.Command{
		Name:  "budget-new",
		Usage: "create a budget",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "amount", Required: true, Usage: "target amount, e.g. 400.00"},
			&cli.StringFlag{Name: "timing", Value: string(model.BudgetTimingMonthly), Usage: "WEEKLY, BIWEEKLY, MONTHLY, QUARTERLY or YEARLY"},
			&cli.BoolFlag{Name: "use-left-over", Usage: "carry unspent amounts into the next period"},
			&cli.BoolFlag{Name: "active", Value: true},
			&cli.StringFlag{Name: "account-id", Usage: "owning account UUID"},
			&cli.Int64Flag{Name: "category-id"},
		},
		Action: func(c *cli.Context) error {
			fields, err := budgetFieldsFromFlags(c)
			if err != nil {
				return err
			}

			api, err := r.Client()
			if err != nil {
				return err
			}
			created, err := api.Budgets.Create(c.Context, model.NewBudget(fields))
			if err != nil {
				return err
			}
			r.dump("budget", created)
			r.printf("Created budget %s (%s)\n", optInt(created.ID), created.GetName())
			return nil
		},
	}
}

func budgetFieldsFromFlags(c *cli.Context) (model.BudgetFields, error) {
	amount, err := model.AmountFromString(c.String("amount"))
	if err != nil {
		return model.BudgetFields{}, fmt.Errorf("invalid amount: %w", err)
	}
	timing, err := model.ParseBudgetTiming(strings.ToUpper(c.String("timing")))
	if err != nil {
		return model.BudgetFields{}, err
	}

	fields := model.BudgetFields{
		Name:         model.String(c.String("name")),
		Amount:       amount,
		BudgetTiming: timing.Timing(),
		UseLeftOver:  model.Bool(c.Bool("use-left-over")),
		Active:       model.Bool(c.Bool("active")),
	}
	if raw := c.String("account-id"); raw != "" {
		id, err := uuid.FromString(raw)
		if err != nil {
			return model.BudgetFields{}, fmt.Errorf("invalid account id: %w", err)
		}
		fields.AccountID = &id
	}
	if c.IsSet("category-id") {
		fields.Category = &model.Category{ID: model.Int64(c.Int64("category-id"))}
	}
	return fields, nil
}

func (r *Runner) budgetDetailView() *cli.Command {
	return &cli.Command{
		Name:      "budget-detail",
		Usage:     "show, toggle or delete a budget",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "active", Usage: "set whether the budget is active"},
			&cli.BoolFlag{Name: "delete", Usage: "delete the budget"},
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
				if err := api.Budgets.Delete(c.Context, id); err != nil {
					return err
				}
				r.printf("Deleted budget %d\n", id)
				return nil
			}

			b, err := api.Budgets.Get(c.Context, id)
			if err != nil {
				return err
			}
			if c.IsSet("active") {
				b.Active = c.Bool("active")
				if b, err = api.Budgets.Update(c.Context, b); err != nil {
					return err
				}
			}
			r.dump("budget", b)
			return r.writeBudgetDetail(b)
		},
	}
}

func (r *Runner) writeBudgetDetail(b model.Budget) error {
	r.printf("Budget %s: %s\n", optInt(b.ID), b.GetName())
	r.printf("  Amount:      %s\n", money(b.Amount.OrZero()))
	r.printf("  Spent:       %s\n", money(b.AmountSpent.OrZero()))
	r.printf("  Remaining:   %s\n", money(b.Remaining()))
	r.printf("  Carryover:   %s\n", money(b.Carryover()))
	r.printf("  Timing:      %s\n", timing(b.BudgetTiming))
	r.printf("  Use leftover: %s\n", yesNo(b.UseLeftOver))
	r.printf("  Active:      %s\n", yesNo(b.Active))
	if b.AccountID != nil {
		r.printf("  Account:     %s\n", b.AccountID)
	}
	if b.Category != nil && b.Category.Name != nil {
		r.printf("  Category:    %s\n", *b.Category.Name)
		for _, sub := range b.Category.SubCategories {
			if sub.Name != nil {
				r.printf("    - %s\n", *sub.Name)
			}
		}
	}
	if len(b.Transactions) == 0 {
		r.printf("\nNo transactions.\n")
		return nil
	}
	r.printf("\n")
	return writeTransactions(r.Out, b.Transactions)
}
