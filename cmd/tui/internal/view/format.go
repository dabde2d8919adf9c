package view

import (
	"fmt"
	"math"
	"time"

	"github.com/nhasan-dev/finarch/internal/currency"
)

// FormatMoney renders a base-currency amount in the display currency with
// its symbol, e.g. -$12.40.
func FormatMoney(base float64, code currency.Code) string {
	return FormatAmount(currency.FromBase(base, code), code)
}

// FormatAmount renders a value already expressed in code, with its symbol.
func FormatAmount(v float64, code currency.Code) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}

	return fmt.Sprintf("%s%s%.2f", sign, currency.Lookup(code).Symbol, math.Abs(v))
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
