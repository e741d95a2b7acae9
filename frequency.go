package compound

import (
	"errors"
	"fmt"
	"strings"
)

// Frequency is the period an amount is expressed in.
type Frequency string

const (
	Weekly      Frequency = "weekly"
	Fortnightly Frequency = "fortnightly"
	Monthly     Frequency = "monthly"
	Yearly      Frequency = "yearly"
)

// ErrUnknownFrequency is returned when parsing an unsupported frequency.
var ErrUnknownFrequency = errors.New("unknown frequency")

// ParseFrequency parses a frequency name, accepting short forms ("week", "month").
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "week", "w":
		return Weekly, nil
	case "fortnightly", "fortnight", "f":
		return Fortnightly, nil
	case "monthly", "month", "m":
		return Monthly, nil
	case "yearly", "year", "annual", "annually", "y":
		return Yearly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
}

// ToWeekly converts amount expressed in frequency f into a weekly amount.
//
// A year is 52 weeks. Unknown frequencies are treated as weekly.
func ToWeekly(amount float64, f Frequency) float64 {
	switch f {
	case Fortnightly:
		return amount / 2
	case Monthly:
		return amount * 12 / 52
	case Yearly:
		return amount / 52
	default:
		return amount
	}
}

// FromWeekly converts a weekly amount into frequency f. It is the inverse of ToWeekly.
func FromWeekly(weekly float64, f Frequency) float64 {
	switch f {
	case Fortnightly:
		return weekly * 2
	case Monthly:
		return weekly * 52 / 12
	case Yearly:
		return weekly * 52
	default:
		return weekly
	}
}

// WeeksPerPeriod returns how many weeks one period of f lasts.
func WeeksPerPeriod(f Frequency) float64 { return FromWeekly(1, f) }

// PeriodsPerYear returns how many periods of f there are in a year of 52 weeks.
func PeriodsPerYear(f Frequency) float64 { return WeeksPerYear / WeeksPerPeriod(f) }
