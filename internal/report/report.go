// Package report computes derived views over the ledger. Everything here is
// a pure function of its inputs and is recomputed on every read.
package report

import (
	"sort"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

// Summary holds the headline totals, expressed in the display currency.
type Summary struct {
	TotalIncome   float64
	TotalExpenses float64
	NetBalance    float64
}

// Summarize totals the ledger by kind. The net balance is computed in base
// currency before conversion so the three figures share one rounding path.
func Summarize(txs []*ledger.Transaction, code currency.Code) Summary {
	var incomeBase, expenseBase float64

	for _, tx := range txs {
		switch tx.Kind {
		case ledger.KindIncome:
			incomeBase += tx.Amount
		case ledger.KindExpense:
			expenseBase += tx.Amount
		}
	}

	return Summary{
		TotalIncome:   currency.FromBase(incomeBase, code),
		TotalExpenses: currency.FromBase(expenseBase, code),
		NetBalance:    currency.FromBase(incomeBase-expenseBase, code),
	}
}

// MonthlyPoint is one bar-chart bucket. Period is a zero-padded "YYYY-MM"
// key, so lexicographic order is chronological order.
type MonthlyPoint struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// AggregateByMonth buckets transactions by year-month and sums income and
// expense per bucket, converted per-transaction into the display currency.
// Returns buckets in ascending period order; an empty ledger yields an empty
// slice.
func AggregateByMonth(txs []*ledger.Transaction, code currency.Code) []MonthlyPoint {
	groups := make(map[string]*MonthlyPoint)

	for _, tx := range txs {
		period := tx.Date.Format("2006-01")

		point, ok := groups[period]
		if !ok {
			point = &MonthlyPoint{Period: period}
			groups[period] = point
		}

		converted := currency.FromBase(tx.Amount, code)

		switch tx.Kind {
		case ledger.KindIncome:
			point.Income += converted
		case ledger.KindExpense:
			point.Expense += converted
		}
	}

	periods := make([]string, 0, len(groups))
	for p := range groups {
		periods = append(periods, p)
	}

	sort.Strings(periods)

	out := make([]MonthlyPoint, len(periods))
	for i, p := range periods {
		out[i] = *groups[p]
	}

	return out
}
