package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nhasan-dev/finarch/internal/ledger"
	"github.com/nhasan-dev/finarch/internal/storage"
)

// Store persists the per-kind category lists, each under its own key so they
// survive independently of the ledger.
type Store struct {
	kv storage.KV
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

func keyFor(kind ledger.Kind) string {
	if kind == ledger.KindIncome {
		return storage.KeyIncomeCategories
	}

	return storage.KeyExpenseCategories
}

func (s *Store) LoadLabels(ctx context.Context, kind ledger.Kind) ([]string, error) {
	raw, ok, err := s.kv.Get(ctx, keyFor(kind))
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	if !ok {
		return nil, nil
	}

	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		slog.Warn("discarding unreadable category state", "kind", kind, "error", err)
		return nil, nil
	}

	return labels, nil
}

func (s *Store) SaveLabels(ctx context.Context, kind ledger.Kind, labels []string) error {
	raw, err := json.Marshal(labels)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}

	if err := s.kv.Set(ctx, keyFor(kind), string(raw)); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}

	return nil
}
