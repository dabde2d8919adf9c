package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

type transactionResponse struct {
	ID          uuid.UUID         `json:"id"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Kind        ledger.Kind       `json:"kind"`
	Amount      float64           `json:"amount"`
	Currency    currency.Code     `json:"currency"`
	Recurrence  ledger.Recurrence `json:"recurrence"`
}

func toResponse(tx *ledger.Transaction, display currency.Code) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Description: tx.Description,
		Category:    tx.Category,
		Kind:        tx.Kind,
		Amount:      currency.FromBase(tx.Amount, display),
		Currency:    display,
		Recurrence:  tx.Recurrence,
	}
}

func toResponseList(txs []*ledger.Transaction, display currency.Code) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx, display)
	}

	return resp
}
