package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nhasan-dev/finarch/internal/ledger"
	"github.com/nhasan-dev/finarch/internal/storage"
)

// Store persists the transaction sequence as a single JSON document in the
// key-value substrate. Every save rewrites the full sequence.
type Store struct {
	kv storage.KV
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) LoadTransactions(ctx context.Context) ([]*ledger.Transaction, error) {
	raw, ok, err := s.kv.Get(ctx, storage.KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	if !ok {
		return nil, nil
	}

	var txs []*ledger.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		// Unreadable persisted state starts over empty rather than
		// wedging the application.
		slog.Warn("discarding unreadable ledger state", "error", err)
		return nil, nil
	}

	return txs, nil
}

func (s *Store) SaveTransactions(ctx context.Context, txs []*ledger.Transaction) error {
	if txs == nil {
		txs = []*ledger.Transaction{}
	}

	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}

	if err := s.kv.Set(ctx, storage.KeyTransactions, string(raw)); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}

	return nil
}
