package storage

import "context"

// Storage keys used by the application. Each key holds an independent value;
// there is no transactional guarantee across keys.
const (
	KeyTheme             = "theme"
	KeyPreferredCurrency = "pref_currency"
	KeyTransactions      = "transactions"
	KeyExpenseCategories = "expense_categories"
	KeyIncomeCategories  = "income_categories"
)

// KV is a string-keyed value store. Get reports whether the key was present.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
