package renderer

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount to display in a currency.
//
// Amounts are computed as float64 by the calculation core, Money only rounds
// them to the currency's fraction and formats them.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
	inf   int // sign of an unbounded amount, 0 otherwise
}

// M returns value in currency.
func M(value float64, currency string) Money {
	switch {
	case math.IsInf(value, 1):
		return Money{cur: currency, inf: 1}
	case math.IsInf(value, -1):
		return Money{cur: currency, inf: -1}
	case math.IsNaN(value):
		return Money{cur: currency}
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// KnownCurrency reports whether code is an ISO 4217 currency code.
func KnownCurrency(code string) bool { return money.GetCurrency(code) != nil }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount with the currency's fraction digits, "$1,234.56".
func (m Money) String() string {
	if m.inf != 0 {
		return m.unbounded()
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Whole returns the amount rounded to the major unit, "$1,235".
func (m Money) Whole() string {
	if m.inf != 0 {
		return m.unbounded()
	}
	cur := m.currency()
	f := cur.Formatter()
	whole := money.NewFormatter(0, f.Decimal, f.Thousand, f.Grapheme, f.Template)
	return whole.Format(m.value.Round(0).IntPart())
}

func (m Money) unbounded() string {
	if m.inf < 0 {
		return "-∞"
	}
	return "∞"
}

// SignedString returns the amount with a sign. 0 is represented as "-".
func (m Money) SignedString() string {
	if m.inf == 0 && m.value.IsZero() {
		return "-"
	}
	if m.inf > 0 || m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.inf == 0 && m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.inf < 0 || m.value.IsNegative() }
func (m Money) IsUnbounded() bool  { return m.inf != 0 }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur && m.inf == n.inf }

// Percent is a rate expressed in percent, 7 for 7%.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Ratio returns r, a ratio from 0 to 1, as a Percent.
func Ratio(r float64) Percent { return Percent(r * 100) }
