package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents the direction of a transaction.
type Kind string

const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

// Recurrence is an advisory cycle tag. It does not generate future
// occurrences.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "NONE"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
)

// Transaction represents a single ledger entry. Amount is always stored in
// the base currency; display conversion happens at the presentation boundary.
type Transaction struct {
	ID          uuid.UUID  `json:"id"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Kind        Kind       `json:"kind"`
	Amount      float64    `json:"amount"`
	Recurrence  Recurrence `json:"recurrence"`
}
