package prefs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/prefs"
	"github.com/nhasan-dev/finarch/internal/storage"
)

func TestService_Defaults(t *testing.T) {
	svc := prefs.NewService(storage.NewMemory())
	ctx := context.Background()

	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeDark, theme)

	code, err := svc.Currency(ctx)
	require.NoError(t, err)
	assert.Equal(t, currency.AUD, code)
}

func TestService_RoundTrip(t *testing.T) {
	svc := prefs.NewService(storage.NewMemory())
	ctx := context.Background()

	require.NoError(t, svc.SetTheme(ctx, prefs.ThemeLight))
	require.NoError(t, svc.SetCurrency(ctx, currency.BDT))

	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeLight, theme)

	code, err := svc.Currency(ctx)
	require.NoError(t, err)
	assert.Equal(t, currency.BDT, code)
}

func TestService_GarbageFallsBackToDefaults(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storage.KeyTheme, "sepia"))
	require.NoError(t, kv.Set(ctx, storage.KeyPreferredCurrency, "DOGE"))

	svc := prefs.NewService(kv)

	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeDark, theme)

	code, err := svc.Currency(ctx)
	require.NoError(t, err)
	assert.Equal(t, currency.AUD, code)
}
