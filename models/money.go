package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount is returned when a monetary amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is a signed monetary amount stored as integer cents.
//
// On the wire amounts are decimal numbers (12.34, -800, "50,25"); Money keeps
// them exact so that sums on the dashboard do not drift.
type Money int64

const maxSafeUnits = math.MaxInt64 / 100

// ParseMoney converts a decimal string into [Money].
//
// Both dot and comma separators are accepted, an optional leading sign is
// honoured and the third fractional digit is rounded half-up (applied to the
// magnitude, so "-0.005" becomes -0.01).
//
//	ParseMoney("12.34")   -> 1234
//	ParseMoney("-50,25")  -> -5025
//	ParseMoney("12.345")  -> 1235
func ParseMoney(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || units > maxSafeUnits {
		return 0, ErrInvalidAmount
	}

	cents := units * 100
	if len(fracPart) > 0 {
		cents += int64(fracPart[0]-'0') * 10
	}
	if len(fracPart) > 1 {
		cents += int64(fracPart[1] - '0')
	}
	if len(fracPart) > 2 && fracPart[2] >= '5' {
		cents++
	}

	if negative {
		cents = -cents
	}
	return Money(cents), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// String renders the amount with exactly two fractional digits ("-12.30").
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Abs returns the magnitude of m.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// Float64 returns the amount in units, for charting only.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// MarshalJSON implements [json.Marshaler]; the amount is written as a JSON
// number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts JSON numbers
// (including exponent notation), numeric strings and null.
func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return fmt.Errorf("decode amount: %w", err)
		}
	}

	if strings.ContainsAny(raw, "eE") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, raw)
		}
		*m = Money(math.Round(f * 100))
		return nil
	}

	parsed, err := ParseMoney(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", err, raw)
	}
	*m = parsed
	return nil
}
