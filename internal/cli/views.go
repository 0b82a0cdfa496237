package cli

import "github.com/urfave/cli/v2"

// Views lists every view command in the order the router shows them.
func Views(r *Runner) []*cli.Command {
	return []*cli.Command{
		r.homeView(),
		r.budgetsView(),
		r.budgetNewView(),
		r.budgetDetailView(),
		r.accountsView(),
		r.accountDetailView(),
		r.transactionsView(),
		r.institutionsView(),
		r.institutionCreateView(),
		r.loginView(),
		r.logoutView(),
		r.forgetPasswordView(),
		r.resetPasswordView(),
		r.swaggerView(),
	}
}

// ViewNames returns the registered view names in order.
func ViewNames(r *Runner) []string {
	views := Views(r)
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	return names
}
