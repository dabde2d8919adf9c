package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
	"github.com/nhasan-dev/finarch/internal/report"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleLedger() []*ledger.Transaction {
	return []*ledger.Transaction{
		{Kind: ledger.KindIncome, Amount: 100, Date: date(2024, 1, 5)},
		{Kind: ledger.KindExpense, Amount: 40, Date: date(2024, 1, 20)},
		{Kind: ledger.KindIncome, Amount: 50, Date: date(2024, 2, 2)},
	}
}

func TestSummarize_BaseCurrency(t *testing.T) {
	s := report.Summarize(sampleLedger(), currency.USD)

	assert.InDelta(t, 150, s.TotalIncome, 1e-9)
	assert.InDelta(t, 40, s.TotalExpenses, 1e-9)
	assert.InDelta(t, 110, s.NetBalance, 1e-9)
}

func TestSummarize_NetEqualsIncomeMinusExpenses(t *testing.T) {
	for _, code := range currency.Codes() {
		s := report.Summarize(sampleLedger(), code)
		assert.InDelta(t, s.TotalIncome-s.TotalExpenses, s.NetBalance, 1e-9, "currency %s", code)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := report.Summarize(nil, currency.AUD)
	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.TotalExpenses)
	assert.Zero(t, s.NetBalance)
}

func TestAggregateByMonth(t *testing.T) {
	points := report.AggregateByMonth(sampleLedger(), currency.USD)

	require.Len(t, points, 2)
	assert.Equal(t, "2024-01", points[0].Period)
	assert.InDelta(t, 100, points[0].Income, 1e-9)
	assert.InDelta(t, 40, points[0].Expense, 1e-9)
	assert.Equal(t, "2024-02", points[1].Period)
	assert.InDelta(t, 50, points[1].Income, 1e-9)
	assert.Zero(t, points[1].Expense)
}

func TestAggregateByMonth_SortedNoDuplicates(t *testing.T) {
	txs := []*ledger.Transaction{
		{Kind: ledger.KindExpense, Amount: 1, Date: date(2024, 12, 1)},
		{Kind: ledger.KindExpense, Amount: 2, Date: date(2023, 2, 10)},
		{Kind: ledger.KindIncome, Amount: 3, Date: date(2024, 12, 25)},
		{Kind: ledger.KindIncome, Amount: 4, Date: date(2024, 3, 3)},
	}

	points := report.AggregateByMonth(txs, currency.USD)

	seen := make(map[string]bool)

	for i, p := range points {
		assert.False(t, seen[p.Period], "duplicate period %s", p.Period)
		seen[p.Period] = true

		if i > 0 {
			assert.Less(t, points[i-1].Period, p.Period)
		}
	}

	require.Len(t, points, 3)
	assert.Equal(t, "2023-02", points[0].Period)
	assert.InDelta(t, 4, points[1].Income, 1e-9)
	assert.InDelta(t, 3, points[2].Income, 1e-9)
	assert.InDelta(t, 1, points[2].Expense, 1e-9)
}

func TestAggregateByMonth_ConvertsPerTransaction(t *testing.T) {
	txs := []*ledger.Transaction{
		{Kind: ledger.KindExpense, Amount: 10, Date: date(2024, 1, 1)},
	}

	points := report.AggregateByMonth(txs, currency.AUD)
	require.Len(t, points, 1)
	assert.InDelta(t, 15.40, points[0].Expense, 1e-9)
}

func TestAggregateByMonth_Empty(t *testing.T) {
	assert.Empty(t, report.AggregateByMonth(nil, currency.USD))
}
