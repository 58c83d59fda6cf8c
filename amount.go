package polifin

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a signed amount of money. The zero value is 0.
type Amount struct {
	d decimal.Decimal
}

// Coerce turns free text into an Amount. Thousands separators are dropped;
// empty or unparseable text is 0. It never fails.
func Coerce(text string) Amount {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if !plainNumber(s) {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return Amount{d: d}
}

// plainNumber reports whether s is an optional sign, digits and at most one
// decimal point. Exponents are not accepted.
func plainNumber(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func NewAmount(d decimal.Decimal) Amount { return Amount{d: d} }

func (a Amount) Add(b Amount) Amount      { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount      { return Amount{d: a.d.Sub(b.d)} }
func (a Amount) Neg() Amount              { return Amount{d: a.d.Neg()} }
func (a Amount) Equal(b Amount) bool      { return a.d.Equal(b.d) }
func (a Amount) IsZero() bool             { return a.d.IsZero() }
func (a Amount) IsNegative() bool         { return a.d.IsNegative() }
func (a Amount) Decimal() decimal.Decimal { return a.d }
func (a Amount) Float64() float64         { return a.d.InexactFloat64() }

// String returns every stored digit, e.g. "1234.5".
func (a Amount) String() string { return a.d.String() }

// Fixed returns the amount rounded to cents without grouping, e.g. "1234.50".
func (a Amount) Fixed() string { return a.d.StringFixed(2) }

// Format returns the amount rounded to cents with thousands grouping,
// e.g. "1,234.50". Rounding is for display only.
func (a Amount) Format() string {
	return group(a.d.StringFixed(2), ",", ".")
}

var (
	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// Money formats the amount in the given ISO currency, e.g. "$1,234.50".
func (a Amount) Money(currency string) string {
	cur := money.New(0, currency).Currency()
	minor := a.d.Shift(int32(cur.Fraction)).Round(0)
	if minor.GreaterThanOrEqual(minCents) && minor.LessThanOrEqual(maxCents) {
		return cur.Formatter().Format(minor.IntPart())
	}

	text := group(a.d.Abs().StringFixed(int32(cur.Fraction)), cur.Thousand, cur.Decimal)
	text = strings.Replace(cur.Template, "1", text, 1)
	text = strings.Replace(text, "$", cur.Grapheme, 1)
	if a.d.IsNegative() {
		text = "-" + text
	}
	return text
}

// group inserts thousands separators into a plain decimal string such as
// "-1234567.50".
func group(s, thousand, point string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(thousand)
		}
		b.WriteRune(c)
	}
	if hasFrac {
		b.WriteString(point)
		b.WriteString(frac)
	}
	return b.String()
}

func sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// MarshalJSON writes the amount as a bare JSON number with all its digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSuffix(strings.TrimPrefix(string(data), `"`), `"`)
	if !plainNumber(s) {
		return fmt.Errorf("invalid amount %s", data)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	a.d = d
	return nil
}
