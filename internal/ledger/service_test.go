package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

func TestService_Add(t *testing.T) {
	type testCase struct {
		name       string
		params     ledger.AddParams
		setupMock  func(m *ledger.MockRepository)
		wantBase   float64
		wantErr    error
		wantNoCall bool
	}

	tests := []testCase{
		{
			name: "ConvertsDisplayAmountToBase",
			params: ledger.AddParams{
				Description: "Server Hosting",
				Category:    "Utilities",
				Kind:        ledger.KindExpense,
				Amount:      15.40,
				Display:     currency.AUD,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().LoadTransactions(gomock.Any()).Return(nil, nil)
				m.EXPECT().
					SaveTransactions(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txs []*ledger.Transaction) error {
						require.Len(t, txs, 1)
						return nil
					})
			},
			wantBase: 10.00,
		},
		{
			name: "BaseCurrencyStoredUnchanged",
			params: ledger.AddParams{
				Description: "Salary",
				Category:    "Salary",
				Kind:        ledger.KindIncome,
				Amount:      100,
				Display:     currency.USD,
				Recurrence:  ledger.RecurrenceMonthly,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().LoadTransactions(gomock.Any()).Return(nil, nil)
				m.EXPECT().SaveTransactions(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantBase: 100,
		},
		{
			name: "EmptyDescriptionRejected",
			params: ledger.AddParams{
				Description: "   ",
				Category:    "Food",
				Kind:        ledger.KindExpense,
				Amount:      5,
				Display:     currency.USD,
			},
			wantErr:    ledger.ErrInvalidEntry,
			wantNoCall: true,
		},
		{
			name: "NonPositiveAmountRejected",
			params: ledger.AddParams{
				Description: "Groceries",
				Category:    "Food",
				Kind:        ledger.KindExpense,
				Amount:      0,
				Display:     currency.USD,
			},
			wantErr:    ledger.ErrInvalidEntry,
			wantNoCall: true,
		},
		{
			name: "RepoError",
			params: ledger.AddParams{
				Description: "Groceries",
				Category:    "Food",
				Kind:        ledger.KindExpense,
				Amount:      5,
				Display:     currency.USD,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().LoadTransactions(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.Add(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				if tt.wantNoCall {
					assert.ErrorIs(t, err, ledger.ErrInvalidEntry)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.InDelta(t, tt.wantBase, got.Amount, 1e-9)
			assert.False(t, got.Date.IsZero())

			if tt.params.Recurrence == "" {
				assert.Equal(t, ledger.RecurrenceNone, got.Recurrence)
			}
		})
	}
}

func TestService_Update_RebasesAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	existing := []*ledger.Transaction{
		{
			ID:          id,
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "Groceries",
			Category:    "Food",
			Kind:        ledger.KindExpense,
			Amount:      40,
			Recurrence:  ledger.RecurrenceNone,
		},
	}

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().LoadTransactions(gomock.Any()).Return(existing, nil)

	var saved []*ledger.Transaction

	repo.EXPECT().
		SaveTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*ledger.Transaction) error {
			saved = txs
			return nil
		})

	svc := ledger.NewService(repo)

	amount := 15.40
	desc := "Weekly shop"

	err := svc.Update(context.Background(), id, ledger.UpdateParams{
		Description: &desc,
		Amount:      &amount,
		Display:     currency.AUD,
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Weekly shop", saved[0].Description)
	assert.InDelta(t, 10.00, saved[0].Amount, 1e-9)
	// Untouched fields survive the merge.
	assert.Equal(t, "Food", saved[0].Category)
	assert.Equal(t, ledger.KindExpense, saved[0].Kind)
}

func TestService_Update_UnknownIDIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().LoadTransactions(gomock.Any()).Return([]*ledger.Transaction{{ID: uuid.New()}}, nil)

	svc := ledger.NewService(repo)

	desc := "anything"
	err := svc.Update(context.Background(), uuid.New(), ledger.UpdateParams{Description: &desc})
	require.NoError(t, err)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keep := &ledger.Transaction{ID: uuid.New(), Description: "keep"}
	doomed := &ledger.Transaction{ID: uuid.New(), Description: "doomed"}

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().LoadTransactions(gomock.Any()).Return([]*ledger.Transaction{keep, doomed}, nil)

	var saved []*ledger.Transaction

	repo.EXPECT().
		SaveTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*ledger.Transaction) error {
			saved = txs
			return nil
		})

	svc := ledger.NewService(repo)
	require.NoError(t, svc.Delete(context.Background(), doomed.ID))

	require.Len(t, saved, 1)
	assert.Equal(t, keep.ID, saved[0].ID)
}

func TestService_Delete_UnknownIDDoesNotRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().LoadTransactions(gomock.Any()).Return([]*ledger.Transaction{{ID: uuid.New()}}, nil)

	svc := ledger.NewService(repo)
	require.NoError(t, svc.Delete(context.Background(), uuid.New()))
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := &ledger.Transaction{ID: uuid.New()}

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().LoadTransactions(gomock.Any()).Return([]*ledger.Transaction{tx}, nil).Times(2)

	svc := ledger.NewService(repo)

	got, err := svc.Get(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx, got)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}
