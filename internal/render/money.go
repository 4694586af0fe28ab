package render

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter turns exact ledger amounts into display strings for one currency.
type Formatter struct {
	code     string
	currency *money.Currency // nil when go-money does not know the code
}

// NewFormatter returns a Formatter for an ISO 4217 currency code.
func NewFormatter(code string) Formatter {
	code = strings.ToUpper(code)
	return Formatter{code: code, currency: money.GetCurrency(code)}
}

// Currency returns the ISO code the formatter was built with.
func (f Formatter) Currency() string { return f.code }

// Money formats an amount, rounded to the currency's minor unit.
func (f Formatter) Money(d decimal.Decimal) string {
	if f.currency == nil {
		return d.StringFixed(2) + " " + f.code
	}
	fraction := int32(f.currency.Fraction)
	minor := d.Shift(fraction).Round(0)
	if !minor.BigInt().IsInt64() {
		// Beyond go-money's int64 minor units.
		return d.StringFixed(fraction) + " " + f.code
	}
	return money.New(minor.IntPart(), f.code).Display()
}

// Optional formats a nullable amount; absent amounts render as "".
func (f Formatter) Optional(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return f.Money(d.Decimal)
}
