package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ninebudget/ninebudget/model"
)

func (r *Runner) transactionsView() *cli.Command {
	return &cli.Command{
		Name:  "transactions",
		Usage: "list the transactions booked against a budget",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "budget", Usage: "budget ID"},
		},
		Action: func(c *cli.Context) error {
			if c.Int64("budget") < 1 {
				return errors.New("--budget is required")
			}
			api, err := r.Client()
			if err != nil {
				return err
			}
			b, err := api.Budgets.Get(c.Context, c.Int64("budget"))
			if err != nil {
				return err
			}
			r.dump("transactions", b.Transactions)
			if len(b.Transactions) == 0 {
				r.printf("No transactions for %s.\n", b.GetName())
				return nil
			}
			return writeTransactions(r.Out, b.Transactions)
		},
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "book a transaction against the budget",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "budget", Required: true, Usage: "budget ID"},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "amount", Required: true},
					&cli.TimestampFlag{Name: "date", Layout: "2006-01-02", Usage: "transaction date, defaults to today"},
				},
				Action: func(c *cli.Context) error {
					amount, err := model.AmountFromString(c.String("amount"))
					if err != nil {
						return fmt.Errorf("invalid amount: %w", err)
					}
					tx := model.Transaction{Name: model.String(c.String("name")), Amount: amount}
					if date := c.Timestamp("date"); date != nil {
						d := date.UTC()
						tx.TransactionDate = &d
					} else {
						now := time.Now().UTC()
						tx.TransactionDate = &now
					}

					api, err := r.Client()
					if err != nil {
						return err
					}
					b, err := api.Budgets.AddTransaction(c.Context, c.Int64("budget"), tx)
					if err != nil {
						return err
					}
					r.dump("budget", b)
					r.printf("Recorded %s against %s, remaining %s\n", money(amount.OrZero()), b.GetName(), money(b.Remaining()))
					return nil
				},
			},
		},
	}
}
