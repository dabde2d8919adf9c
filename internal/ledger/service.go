package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhasan-dev/finarch/internal/currency"
)

var (
	ErrNotFound = errors.New("transaction not found")

	// ErrInvalidEntry marks input that the ledger refuses to record.
	// Interactive boundaries treat it as a silent no-op.
	ErrInvalidEntry = errors.New("invalid ledger entry")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	LoadTransactions(ctx context.Context) ([]*Transaction, error)
	SaveTransactions(ctx context.Context, txs []*Transaction) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddParams describes a new entry. Amount is expressed in Display currency
// and is re-based before storage, using the rate active at call time.
type AddParams struct {
	Description string
	Category    string
	Kind        Kind
	Amount      float64
	Display     currency.Code
	Recurrence  Recurrence
}

func (s *Service) Add(ctx context.Context, params AddParams) (*Transaction, error) {
	desc := strings.TrimSpace(params.Description)
	cat := strings.TrimSpace(params.Category)

	if desc == "" || cat == "" || !validAmount(params.Amount) {
		return nil, ErrInvalidEntry
	}

	recurrence := params.Recurrence
	if recurrence == "" {
		recurrence = RecurrenceNone
	}

	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	tx := &Transaction{
		ID:          uuid.New(),
		Date:        today(),
		Description: desc,
		Category:    cat,
		Kind:        params.Kind,
		Amount:      currency.ToBase(params.Amount, params.Display),
		Recurrence:  recurrence,
	}

	txs = append(txs, tx)

	if err := s.repo.SaveTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("saving ledger: %w", err)
	}

	return tx, nil
}

// UpdateParams carries a partial field replacement. Nil fields are left
// untouched. Amount, when present, is a display-currency value converted via
// Display before the merge.
type UpdateParams struct {
	Description *string
	Category    *string
	Kind        *Kind
	Amount      *float64
	Display     currency.Code
	Recurrence  *Recurrence
}

// Update merges params into the transaction with the given id. An unknown id
// is a no-op.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) error {
	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	var tx *Transaction

	for _, t := range txs {
		if t.ID == id {
			tx = t
			break
		}
	}

	if tx == nil {
		return nil
	}

	if params.Description != nil {
		tx.Description = strings.TrimSpace(*params.Description)
	}

	if params.Category != nil {
		tx.Category = strings.TrimSpace(*params.Category)
	}

	if params.Kind != nil {
		tx.Kind = *params.Kind
	}

	if params.Amount != nil && validAmount(*params.Amount) {
		tx.Amount = currency.ToBase(*params.Amount, params.Display)
	}

	if params.Recurrence != nil {
		tx.Recurrence = *params.Recurrence
	}

	if err := s.repo.SaveTransactions(ctx, txs); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	return nil
}

// Delete removes the transaction with the given id. An unknown id is a no-op
// and does not rewrite storage. Confirmation gates live at the presentation
// layer; deletion here is irreversible.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	kept := make([]*Transaction, 0, len(txs))

	for _, t := range txs {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if len(kept) == len(txs) {
		return nil
	}

	if err := s.repo.SaveTransactions(ctx, kept); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	return nil
}

// List returns all transactions in entry order.
func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.LoadTransactions(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	for _, t := range txs {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, ErrNotFound
}

func (s *Service) Count(ctx context.Context) (int, error) {
	txs, err := s.repo.LoadTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading ledger: %w", err)
	}

	return len(txs), nil
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
