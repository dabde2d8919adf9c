package currency

// Code identifies a supported currency.
type Code string

const (
	AUD Code = "AUD"
	USD Code = "USD"
	BDT Code = "BDT"
)

// Base is the currency every amount is persisted in, independent of the
// display preference.
const Base = USD

// Descriptor holds the static metadata for a supported currency. Rate is the
// number of units of this currency per one base unit.
type Descriptor struct {
	Code   Code
	Symbol string
	Rate   float64
	Label  string
}

var table = map[Code]Descriptor{
	AUD: {Code: AUD, Symbol: "$", Rate: 1.54, Label: "Australian Dollar"},
	USD: {Code: USD, Symbol: "$", Rate: 1, Label: "US Dollar"},
	BDT: {Code: BDT, Symbol: "৳", Rate: 109.8, Label: "Bangladeshi Taka"},
}

var codes = []Code{AUD, USD, BDT}

// Lookup returns the descriptor for code, falling back to the base currency
// for unknown codes.
func Lookup(code Code) Descriptor {
	if d, ok := table[code]; ok {
		return d
	}

	return table[Base]
}

// Known reports whether code is a supported currency.
func Known(code Code) bool {
	_, ok := table[code]
	return ok
}

// Codes returns the supported currency codes in display order.
func Codes() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)

	return out
}

// ToBase converts an amount expressed in code into the base currency.
func ToBase(amount float64, code Code) float64 {
	return amount / Lookup(code).Rate
}

// FromBase converts a base-currency amount into code for display.
func FromBase(amount float64, code Code) float64 {
	return amount * Lookup(code).Rate
}
