package stats

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money field that can be unmarshaled from a JSON number, a
// numeric string, or null. Malformed values decode to an undefined zero
// rather than failing the record; sums must never see a NaN.
type Amount struct {
	value   decimal.Decimal
	defined bool
}

// AmountOf builds a defined Amount, for tests and fixtures.
func AmountOf(f float64) Amount {
	return Amount{value: decimal.NewFromFloat(f), defined: true}
}

// Defined reports whether the field was present with a usable value.
func (a Amount) Defined() bool {
	return a.defined
}

// Decimal returns the value, zero when undefined.
func (a Amount) Decimal() decimal.Decimal {
	if !a.defined {
		return decimal.Zero
	}
	return a.value
}

// Float64 returns the value as a float, zero when undefined.
func (a Amount) Float64() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		if d, derr := decimal.NewFromString(n.String()); derr == nil {
			a.value = d
			a.defined = true
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if d, derr := decimal.NewFromString(s); derr == nil {
			a.value = d
			a.defined = true
		}
		return nil
	}

	// Objects, booleans, arrays: undefined, contributes zero.
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.defined {
		return []byte("null"), nil
	}
	return []byte(a.value.String()), nil
}
