// Package prefs persists the small presentation preferences: theme and
// display currency. Each lives under its own storage key.
package prefs

import (
	"context"
	"fmt"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/storage"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Defaults match the original behavior: dark theme, AUD display.
const (
	DefaultTheme    = ThemeDark
	DefaultCurrency = currency.AUD
)

type Service struct {
	kv storage.KV
}

func NewService(kv storage.KV) *Service {
	return &Service{kv: kv}
}

// Theme returns the persisted theme, defaulting (also on unreadable state) to
// dark.
func (s *Service) Theme(ctx context.Context) (Theme, error) {
	raw, ok, err := s.kv.Get(ctx, storage.KeyTheme)
	if err != nil {
		return DefaultTheme, fmt.Errorf("loading theme: %w", err)
	}

	if !ok || (Theme(raw) != ThemeDark && Theme(raw) != ThemeLight) {
		return DefaultTheme, nil
	}

	return Theme(raw), nil
}

func (s *Service) SetTheme(ctx context.Context, theme Theme) error {
	if err := s.kv.Set(ctx, storage.KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}

	return nil
}

// Currency returns the preferred display currency, defaulting to AUD when
// unset or unknown.
func (s *Service) Currency(ctx context.Context) (currency.Code, error) {
	raw, ok, err := s.kv.Get(ctx, storage.KeyPreferredCurrency)
	if err != nil {
		return DefaultCurrency, fmt.Errorf("loading preferred currency: %w", err)
	}

	if !ok || !currency.Known(currency.Code(raw)) {
		return DefaultCurrency, nil
	}

	return currency.Code(raw), nil
}

func (s *Service) SetCurrency(ctx context.Context, code currency.Code) error {
	if err := s.kv.Set(ctx, storage.KeyPreferredCurrency, string(code)); err != nil {
		return fmt.Errorf("saving preferred currency: %w", err)
	}

	return nil
}
