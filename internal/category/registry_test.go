package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhasan-dev/finarch/internal/category"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

// fakeRepo keeps labels in memory and counts saves.
type fakeRepo struct {
	lists map[ledger.Kind][]string
	saves int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{lists: make(map[ledger.Kind][]string)}
}

func (f *fakeRepo) LoadLabels(_ context.Context, kind ledger.Kind) ([]string, error) {
	return f.lists[kind], nil
}

func (f *fakeRepo) SaveLabels(_ context.Context, kind ledger.Kind, labels []string) error {
	f.lists[kind] = labels
	f.saves++

	return nil
}

func TestRegistry_ListFor_Defaults(t *testing.T) {
	reg := category.NewRegistry(newFakeRepo())

	labels, err := reg.ListFor(context.Background(), ledger.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Clothing", "Rent", "Utilities", "Transport", "Entertainment", "Health", "Other"}, labels)

	labels, err = reg.ListFor(context.Background(), ledger.KindIncome)
	require.NoError(t, err)
	assert.Equal(t, category.CatchAll, labels[len(labels)-1])
}

func TestRegistry_Ensure_InsertsBeforeCatchAll(t *testing.T) {
	repo := newFakeRepo()
	reg := category.NewRegistry(repo)
	ctx := context.Background()

	require.NoError(t, reg.Ensure(ctx, ledger.KindExpense, "Subscriptions"))

	labels, err := reg.ListFor(ctx, ledger.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, "Subscriptions", labels[len(labels)-2])
	assert.Equal(t, category.CatchAll, labels[len(labels)-1])
}

func TestRegistry_Ensure_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	reg := category.NewRegistry(repo)
	ctx := context.Background()

	require.NoError(t, reg.Ensure(ctx, ledger.KindIncome, "Royalties"))
	require.NoError(t, reg.Ensure(ctx, ledger.KindIncome, "Royalties"))

	labels, err := reg.ListFor(ctx, ledger.KindIncome)
	require.NoError(t, err)

	count := 0

	for _, l := range labels {
		if l == "Royalties" {
			count++
		}
	}

	assert.Equal(t, 1, count)
	assert.Equal(t, category.CatchAll, labels[len(labels)-1])
	assert.Equal(t, 1, repo.saves, "second Ensure must not rewrite storage")
}

func TestRegistry_Ensure_IgnoresBlankLabels(t *testing.T) {
	repo := newFakeRepo()
	reg := category.NewRegistry(repo)

	require.NoError(t, reg.Ensure(context.Background(), ledger.KindExpense, "   "))
	assert.Zero(t, repo.saves)
}

func TestRegistry_Ensure_ExistingDefaultIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	reg := category.NewRegistry(repo)

	require.NoError(t, reg.Ensure(context.Background(), ledger.KindExpense, "Food"))
	assert.Zero(t, repo.saves)
}

func TestRegistry_KindsAreIndependent(t *testing.T) {
	repo := newFakeRepo()
	reg := category.NewRegistry(repo)
	ctx := context.Background()

	require.NoError(t, reg.Ensure(ctx, ledger.KindExpense, "Subscriptions"))

	incomes, err := reg.ListFor(ctx, ledger.KindIncome)
	require.NoError(t, err)
	assert.NotContains(t, incomes, "Subscriptions")
}
