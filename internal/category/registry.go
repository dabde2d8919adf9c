package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhasan-dev/finarch/internal/ledger"
)

// CatchAll is the sentinel label that always terminates a category list. New
// user labels are inserted immediately before it.
const CatchAll = "Other"

var defaults = map[ledger.Kind][]string{
	ledger.KindExpense: {"Food", "Clothing", "Rent", "Utilities", "Transport", "Entertainment", "Health", CatchAll},
	ledger.KindIncome:  {"Salary", "Freelance", "Investments", "Rental Income", "Gifts", CatchAll},
}

// Repository persists one label list per transaction kind. LoadLabels returns
// nil when no list has been persisted yet.
type Repository interface {
	LoadLabels(ctx context.Context, kind ledger.Kind) ([]string, error)
	SaveLabels(ctx context.Context, kind ledger.Kind, labels []string) error
}

type Registry struct {
	repo Repository
}

func NewRegistry(repo Repository) *Registry {
	return &Registry{repo: repo}
}

// DefaultsFor returns the built-in label list for a kind.
func DefaultsFor(kind ledger.Kind) []string {
	out := make([]string, len(defaults[kind]))
	copy(out, defaults[kind])

	return out
}

// ListFor returns the ordered label list for a kind, falling back to the
// defaults when nothing has been persisted.
func (r *Registry) ListFor(ctx context.Context, kind ledger.Kind) ([]string, error) {
	labels, err := r.repo.LoadLabels(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("loading %s categories: %w", strings.ToLower(string(kind)), err)
	}

	if labels == nil {
		return DefaultsFor(kind), nil
	}

	return labels, nil
}

// Ensure adds label to the kind's list if it is not already present,
// inserting it immediately before the catch-all sentinel. Empty and
// already-known labels are ignored; matching is case-sensitive. Idempotent.
func (r *Registry) Ensure(ctx context.Context, kind ledger.Kind, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil
	}

	labels, err := r.ListFor(ctx, kind)
	if err != nil {
		return err
	}

	for _, l := range labels {
		if l == label {
			return nil
		}
	}

	if n := len(labels); n > 0 && labels[n-1] == CatchAll {
		labels = append(labels[:n-1], label, CatchAll)
	} else {
		labels = append(labels, label)
	}

	if err := r.repo.SaveLabels(ctx, kind, labels); err != nil {
		return fmt.Errorf("saving %s categories: %w", strings.ToLower(string(kind)), err)
	}

	return nil
}
