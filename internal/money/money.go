package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

var hundred = decimal.NewFromInt(100)

// MaxAmount is the largest magnitude, in whole units, that Parse accepts.
var MaxAmount = decimal.New(1, 12)

// Parse converts a user-entered amount into cents.
// Examples: "12" -> 1200, "12.5" -> 1250, "12,50" -> 1250, "-7" -> -700, "" -> 0.
// Exponent notation is not accepted, nor are magnitudes above MaxAmount.
func Parse(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0, nil
	}

	if strings.ContainsAny(clean, "eE") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if !strings.Contains(clean, ".") {
		clean = strings.Replace(clean, ",", ".", 1)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if d.Abs().GreaterThan(MaxAmount) {
		return 0, fmt.Errorf("%w: %q exceeds %s", ErrInvalidAmount, s, MaxAmount)
	}

	return d.Mul(hundred).Round(0).IntPart(), nil
}

// ParseNonNegative is Parse for fields that only accept zero or positive amounts.
func ParseNonNegative(s string) (int64, error) {
	cents, err := Parse(s)
	if err != nil {
		return 0, err
	}

	if cents < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}

	return cents, nil
}

// Format renders cents as a plain decimal string, e.g. 1250 -> "12.50".
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FormatAbs renders the magnitude of cents, used in "you owe"/"owes you" phrases.
func FormatAbs(cents int64) string {
	if cents < 0 {
		cents = -cents
	}

	return Format(cents)
}
