package sqlconfig

// Table names and the column lists selected for each table. Column order
// matches the db tags of the row structs in the storage packages.
const (
	AccountsTable     = "accounts"
	BudgetsTable      = "budgets"
	TransactionsTable = "transactions"
	CategoriesTable   = "categories"
)

var AccountColumns = []any{
	"id",
	"name",
	"active",
	"category_id",
	"budget_id",
	"institution_id",
	"created_at",
}

var BudgetColumns = []any{
	"id",
	"name",
	"amount",
	"amount_spent",
	"budget_timing",
	"use_left_over",
	"active",
	"account_id",
	"category_id",
	"created_at",
}

var TransactionColumns = []any{
	"id",
	"budget_id",
	"name",
	"amount",
	"transaction_date",
	"created_at",
}

var CategoryColumns = []any{
	"id",
	"name",
	"parent_id",
}

// DefaultListLimit is used when a caller asks for a page without a size.
const DefaultListLimit = 20
