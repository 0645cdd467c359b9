// Package money holds currency amounts as fixed-point integer minor units
// (centavos), avoiding the cumulative drift of float arithmetic on prices.
package money

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Amount is a currency value in minor units. 100 == ₱1.00.
type Amount int64

// FromFloat converts a major-unit float (e.g. a catalog price) to an Amount,
// rounding half away from zero.
func FromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Amount(math.Round(f * 100))
}

// Parse reads a decimal string ("1000", "999.50"). Unparseable input yields
// zero: upstream data stores prices as either numbers or numeric strings, and
// a bad price must degrade to zero rather than fail the whole bag.
func Parse(s string) Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return FromFloat(f)
}

// Float64 returns the amount in major units.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// Mul scales the amount by a quantity.
func (a Amount) Mul(qty int) Amount {
	return a * Amount(qty)
}

// String formats the amount as a peso price, e.g. "₱1,250.00".
func (a Amount) String() string {
	neg := a < 0
	if neg {
		a = -a
	}
	units := int64(a) / 100
	cents := int64(a) % 100

	digits := strconv.FormatInt(units, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₱")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	if cents < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(cents, 10))
	return b.String()
}

// MarshalJSON writes the amount as a plain 2-decimal number so the wire shape
// stays compatible with consumers expecting `"price": 1250.00`.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(a.Float64(), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string. Anything
// else decodes to zero without error; the persisted bag format tolerates
// malformed prices.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	s := string(data)
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	*a = Parse(s)
	return nil
}
