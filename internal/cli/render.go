package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/ninebudget/ninebudget/model"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func writeAccounts(out io.Writer, accounts []model.Account) error {
	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tNAME\tACTIVE\tCATEGORY\tBUDGET\tINSTITUTION")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			optInt(a.ID), a.GetName(), yesNo(a.Active),
			optInt(a.CategoryID), optInt(a.BudgetID), optInt(a.InstitutionID))
	}
	return tw.Flush()
}

func writeBudgets(out io.Writer, budgets []model.Budget) error {
	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tNAME\tAMOUNT\tSPENT\tREMAINING\tTIMING\tACTIVE")
	for _, b := range budgets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			optInt(b.ID), b.GetName(), money(b.Amount.OrZero()), money(b.AmountSpent.OrZero()),
			money(b.Remaining()), timing(b.BudgetTiming), yesNo(b.Active))
	}
	return tw.Flush()
}

func writeTransactions(out io.Writer, txs []model.Transaction) error {
	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tDATE\tNAME\tAMOUNT")
	for _, tx := range txs {
		date := "-"
		if tx.TransactionDate != nil {
			date = tx.TransactionDate.Format("2006-01-02")
		}
		name := "-"
		if tx.Name != nil {
			name = *tx.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", optInt(tx.ID), date, name, money(tx.Amount.OrZero()))
	}
	return tw.Flush()
}

func writeInstitutions(out io.Writer, institutions []model.Institution) error {
	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tBALANCE\tACTIVE")
	for _, i := range institutions {
		id, name, kind := "-", "-", "-"
		if i.ID != nil {
			id = i.ID.String()
		}
		if i.Name != nil {
			name = *i.Name
		}
		if i.Type != nil {
			kind = string(*i.Type)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", id, name, kind, money(i.Balance.OrZero()), yesNo(i.Active))
	}
	return tw.Flush()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func timing(t *model.BudgetTiming) string {
	if t == nil {
		return "-"
	}
	return string(*t)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
