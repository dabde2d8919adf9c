package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhasan-dev/finarch/internal/ledger"
	"github.com/nhasan-dev/finarch/internal/ledger/store"
	"github.com/nhasan-dev/finarch/internal/storage"
)

func TestStore_RoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	s := store.New(kv)
	ctx := context.Background()

	txs, err := s.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	want := []*ledger.Transaction{
		{
			ID:          uuid.New(),
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "Salary",
			Category:    "Salary",
			Kind:        ledger.KindIncome,
			Amount:      100,
			Recurrence:  ledger.RecurrenceMonthly,
		},
		{
			ID:          uuid.New(),
			Date:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Description: "Groceries",
			Category:    "Food",
			Kind:        ledger.KindExpense,
			Amount:      40,
			Recurrence:  ledger.RecurrenceNone,
		},
	}

	require.NoError(t, s.SaveTransactions(ctx, want))

	got, err := s.LoadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[1].Description, got[1].Description)
	assert.Equal(t, want[1].Amount, got[1].Amount)
	assert.True(t, want[0].Date.Equal(got[0].Date))
}

func TestStore_CorruptStateLoadsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storage.KeyTransactions, "{not json"))

	got, err := store.New(kv).LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_SaveEmptySequence(t *testing.T) {
	kv := storage.NewMemory()
	s := store.New(kv)
	ctx := context.Background()

	require.NoError(t, s.SaveTransactions(ctx, nil))

	raw, ok, err := kv.Get(ctx, storage.KeyTransactions)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, "[]", raw)
}
