package compound

import (
	"math"
	"time"
)

// Recorded values (an investment value, a bucket amount, a mortgage principal)
// are true as of their "updated at" timestamp. The functions in this file
// reconstruct what they are likely to be at a later instant.

const week = 7 * 24 * time.Hour

// WeeksPerMonth is the average number of weeks in a month.
const WeeksPerMonth = WeeksPerYear / 12.0

// weeksSince returns the number of whole weeks elapsed from 'from' to now.
// It is 0 for an unset timestamp or one in the future.
func weeksSince(from Timestamp, now time.Time) int {
	if from.IsZero() {
		return 0
	}
	elapsed := now.Sub(from.Time())
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / week)
}

// ValueSnapshot is a recorded value projected to a later instant.
type ValueSnapshot struct {
	ProjectedValue           float64
	WeeksSinceUpdate         int
	ContributionsSinceUpdate float64 // amount paid in
	GrowthSinceUpdate        float64 // returns earned, on the balance and on the contributions
}

// projectValue grows value and weeks weekly contributions at annualRate (a decimal).
func projectValue(value, weeklyContribution, annualRate float64, weeks int) ValueSnapshot {
	if weeks == 0 {
		return ValueSnapshot{ProjectedValue: value}
	}
	n := float64(weeks)
	contributions := weeklyContribution * n
	if annualRate == 0 {
		return ValueSnapshot{
			ProjectedValue:           value + contributions,
			WeeksSinceUpdate:         weeks,
			ContributionsSinceUpdate: contributions,
		}
	}
	r := WeeklyRate(annualRate)
	projected := value*math.Pow(1+r, n) + weeklyContribution*annuityFactor(r, n)
	return ValueSnapshot{
		ProjectedValue:           projected,
		WeeksSinceUpdate:         weeks,
		ContributionsSinceUpdate: contributions,
		GrowthSinceUpdate:        projected - value - contributions,
	}
}

// ProjectCurrentInvestmentValue returns the value of inv at now, from its
// recorded value, its net return and its weekly contributions.
func ProjectCurrentInvestmentValue(inv Investment, now time.Time) ValueSnapshot {
	weeks := weeksSince(inv.CurrentValueUpdatedAt.or(inv.UpdatedAt), now)
	return projectValue(inv.CurrentValue, inv.WeeklyContribution, inv.NetReturnRate(), weeks)
}

// ProjectCurrentBucketValue returns the amount in b at now. Without an
// expected return the contributions are simply added up.
func ProjectCurrentBucketValue(b SavingsBucket, now time.Time) ValueSnapshot {
	weeks := weeksSince(b.CurrentAmountUpdatedAt.or(b.UpdatedAt), now)
	return projectValue(b.CurrentAmount, b.WeeklyContribution, b.ExpectedReturnRate/100, weeks)
}

// MortgageSnapshot is a recorded mortgage principal projected to a later instant.
type MortgageSnapshot struct {
	ProjectedBalance         float64
	WeeksSinceUpdate         int
	MonthsSinceUpdate        int
	PrincipalPaidSinceUpdate float64 // negative if unpaid interest was capitalized
	InterestPaidSinceUpdate  float64
}

// ProjectCurrentMortgageBalance returns the balance of m at now, applying
// one repayment per whole month elapsed since the principal was recorded.
func ProjectCurrentMortgageBalance(m Mortgage, now time.Time) MortgageSnapshot {
	weeks := weeksSince(m.PrincipalUpdatedAt.or(m.UpdatedAt), now)
	months := int(math.Floor(float64(weeks) / WeeksPerMonth))
	if months == 0 {
		return MortgageSnapshot{ProjectedBalance: m.Principal, WeeksSinceUpdate: weeks}
	}
	a := amortize(m.Principal, m.MonthlyRate(), m.MonthlyPayment(), months, false, nil)
	return MortgageSnapshot{
		ProjectedBalance:         a.balance,
		WeeksSinceUpdate:         weeks,
		MonthsSinceUpdate:        months,
		PrincipalPaidSinceUpdate: a.principal,
		InterestPaidSinceUpdate:  a.interest,
	}
}
