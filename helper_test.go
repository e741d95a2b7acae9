package compound

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// now is the fixed instant tests are evaluated at.
var now = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

// weeksAgo returns the timestamp n weeks before now.
func weeksAgo(n int) Timestamp { return TimestampOf(now.Add(-time.Duration(n) * week)) }

const tolerance = 1e-6

// approx is a cmp option to compare floats with a small tolerance.
var approx = cmpopts.EquateApprox(0, tolerance)

// assertClose fails if got is not within tolerance of want.
func assertClose(t *testing.T, what string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %.6f, want %.6f (diff %g)", what, got, want, got-want)
	}
}

// assertDiff fails with a readable diff if got and want differ.
func assertDiff(t *testing.T, what string, got, want any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, append(opts, approx)...); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", what, diff)
	}
}

// item is a helper to create a top-level budget item.
func item(id string, amount float64, f Frequency, c Category) BudgetItem {
	return BudgetItem{ID: id, Name: id, Amount: amount, Frequency: f, Category: c}
}

// child is a helper to create a budget item under parent.
func child(id, parent string, amount float64, f Frequency, c Category) BudgetItem {
	b := item(id, amount, f, c)
	b.ParentID = parent
	return b
}

// homeLoan is the reference mortgage of the tests.
func homeLoan() Mortgage {
	return Mortgage{
		ID:                "home",
		Name:              "Home",
		Principal:         500000,
		OriginalPrincipal: 550000,
		PropertyValue:     800000,
		InterestRate:      6,
		WeeklyPayment:     700,
		TermYears:         30,
	}
}

// etf is the reference investment of the tests.
func etf() Investment {
	return Investment{
		ID:                 "etf",
		Name:               "World ETF",
		CurrentValue:       10000,
		WeeklyContribution: 50,
		ExpectedReturnRate: 7,
	}
}
