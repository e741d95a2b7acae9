package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	today := New(2025, time.August, 15)

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO Format (Fallback)
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative Duration Format
		{"-1d", New(2025, time.August, 14), false},
		{"+1d", New(2025, time.August, 16), false},
		{"1d", Date{}, true},
		{"-0d", today, false},
		{"0d", today, false},
		{"-2w", New(2025, time.August, 1), false},
		{"+1m", New(2025, time.September, 15), false},
		{"-3q", New(2024, time.November, 15), false},
		{"+1y", New(2026, time.August, 15), false},
		{"+10y", New(2035, time.August, 15), false},

		// [MM-]DD Format
		{"27", New(2025, time.August, 27), false},
		{"8-0", New(2025, time.July, 31), false},
		{"1-15", New(2025, time.January, 15), false},
		{"0-15", New(2024, time.December, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseFrom(today, tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAddMonth(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		n    int
		want Date
	}{
		{"same year", New(2025, time.January, 10), 3, New(2025, time.April, 10)},
		{"year boundary", New(2025, time.November, 1), 14, New(2027, time.January, 1)},
		{"backwards", New(2025, time.March, 5), -3, New(2024, time.December, 5)},
		{"normalized overflow", New(2025, time.January, 31), 1, New(2025, time.March, 3)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.AddMonth(tc.n); got != tc.want {
				t.Errorf("%v.AddMonth(%d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestOf(t *testing.T) {
	at := time.Date(2025, time.March, 4, 23, 59, 0, 0, time.UTC)
	if got, want := Of(at), New(2025, time.March, 4); got != want {
		t.Errorf("Of(%v) = %v, want %v", at, got, want)
	}
}

func TestIsToday(t *testing.T) {
	if !Today().IsToday() {
		t.Errorf("Today().IsToday() = false, want true")
	}
	if d, _ := Parse("0d"); !d.IsToday() {
		t.Errorf("Parse(0d).IsToday() = false, want true")
	}
	if Today().Add(-1).IsToday() {
		t.Errorf("yesterday.IsToday() = true, want false")
	}
}
