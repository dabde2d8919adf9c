// Package httputil holds small helpers shared by the API handlers.
package httputil

import (
	"net/http"
	"strings"

	"github.com/nhasan-dev/finarch/internal/currency"
)

// DisplayCurrency resolves the ?currency= query parameter. Amounts are stored
// in the base currency; any known code converts the response, anything else
// falls back to base.
func DisplayCurrency(r *http.Request) currency.Code {
	code := currency.Code(strings.ToUpper(r.URL.Query().Get("currency")))
	if currency.Known(code) {
		return code
	}

	return currency.Base
}
