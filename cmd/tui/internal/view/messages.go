package view

import (
	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
	"github.com/nhasan-dev/finarch/internal/prefs"
)

// EntrySavedMsg is emitted after a transaction has been recorded, from either
// the manual form or the parse flow. Count is the total ledger size
// afterwards; the root model uses it to decide whether to request advice.
type EntrySavedMsg struct {
	Tx    *ledger.Transaction
	Count int
	Err   error
}

// AdviceMsg delivers the latest advice text. Whichever request resolves last
// wins.
type AdviceMsg struct {
	Text string
}

// PrefsSavedMsg is emitted when the preferences form completes.
type PrefsSavedMsg struct {
	Currency currency.Code
	Theme    prefs.Theme
	Err      error
}
