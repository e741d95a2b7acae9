package compound

import (
	"math"

	"github.com/etnz/compound/date"
)

// MaxAmortizationMonths caps every amortization loop (100 years).
const MaxAmortizationMonths = 1200

// UnboundedMonths is the MonthsRemaining of a loan that is never repaid.
const UnboundedMonths = math.MaxInt32

// MonthlyRate returns the monthly interest rate of m, as a decimal.
func (m Mortgage) MonthlyRate() float64 { return m.InterestRate / 100 / 12 }

// MonthlyPayment returns the total monthly repayment of m, extra payments included.
func (m Mortgage) MonthlyPayment() float64 {
	return (m.WeeklyPayment + m.ExtraWeeklyPayment) * WeeksPerYear / 12
}

// AmortizationRow is one month of a repayment schedule.
type AmortizationRow struct {
	Month     int // 1 for the first month
	Date      date.Date
	Payment   float64
	Interest  float64
	Principal float64 // negative when the payment does not cover the interest
	Balance   float64 // after this month's payment
}

// amortization is the outcome of running the monthly loop.
type amortization struct {
	balance   float64
	months    int
	interest  float64
	principal float64
	unpayable bool // a month's payment did not cover its interest
}

// amortize runs the monthly loop on balance for at most months months, or until
// the balance is repaid. The final month only pays what is left, so a repaid
// balance is exactly 0.
//
// When a payment does not cover the interest, amortize stops if
// stopWhenUnpayable is set, otherwise the unpaid interest is capitalized.
// visit, if not nil, is called for each simulated month.
func amortize(balance, monthlyRate, payment float64, months int, stopWhenUnpayable bool, visit func(AmortizationRow)) amortization {
	var a amortization
	for balance > 0 && a.months < months {
		interest := balance * monthlyRate
		principal := payment - interest
		if principal <= 0 {
			a.unpayable = true
			if stopWhenUnpayable {
				break
			}
		}
		if principal > balance {
			principal = balance
		}
		balance -= principal
		a.months++
		a.interest += interest
		a.principal += principal
		if visit != nil {
			visit(AmortizationRow{
				Month:     a.months,
				Payment:   interest + principal,
				Interest:  interest,
				Principal: principal,
				Balance:   balance,
			})
		}
	}
	a.balance = max(balance, 0)
	return a
}

// MortgagePayoff summarizes the repayment of a mortgage.
type MortgagePayoff struct {
	MonthsRemaining  int
	TotalInterest    float64
	TotalPaid        float64
	PayoffDate       date.Date
	RemainingBalance float64 // non zero only if the 100 years ceiling was hit
	Unpayable        bool    // the repayment does not cover the interest
}

// CalculateMortgagePayoff simulates the repayment of m from its recorded
// principal, month by month from on.
//
// A mortgage whose repayment never covers the monthly interest is reported
// Unpayable, with UnboundedMonths, infinite interest and date.Max as payoff date.
func CalculateMortgagePayoff(m Mortgage, on date.Date) MortgagePayoff {
	a := amortize(m.Principal, m.MonthlyRate(), m.MonthlyPayment(), MaxAmortizationMonths, true, nil)
	if a.unpayable {
		return MortgagePayoff{
			MonthsRemaining:  UnboundedMonths,
			TotalInterest:    math.Inf(1),
			TotalPaid:        math.Inf(1),
			PayoffDate:       date.Max,
			RemainingBalance: m.Principal,
			Unpayable:        true,
		}
	}
	return MortgagePayoff{
		MonthsRemaining:  a.months,
		TotalInterest:    a.interest,
		TotalPaid:        m.Principal + a.interest,
		PayoffDate:       on.AddMonth(a.months),
		RemainingBalance: a.balance,
	}
}

// ExtraPaymentImpact compares a mortgage with and without an extra weekly payment.
type ExtraPaymentImpact struct {
	MonthsSaved   int
	InterestSaved float64
	Baseline      MortgagePayoff
	WithExtra     MortgagePayoff
}

// MortgageExtraPaymentImpact computes what paying extraWeekly more each week would save.
func MortgageExtraPaymentImpact(m Mortgage, extraWeekly float64, on date.Date) ExtraPaymentImpact {
	modified := m
	modified.ExtraWeeklyPayment += extraWeekly

	impact := ExtraPaymentImpact{
		Baseline:  CalculateMortgagePayoff(m, on),
		WithExtra: CalculateMortgagePayoff(modified, on),
	}
	switch {
	case impact.Baseline.Unpayable && impact.WithExtra.Unpayable:
		// nothing is saved on a loan that is never repaid
	case impact.Baseline.Unpayable:
		impact.MonthsSaved, impact.InterestSaved = UnboundedMonths, math.Inf(1)
	case impact.WithExtra.Unpayable:
		impact.MonthsSaved, impact.InterestSaved = -UnboundedMonths, math.Inf(-1)
	default:
		impact.MonthsSaved = impact.Baseline.MonthsRemaining - impact.WithExtra.MonthsRemaining
		impact.InterestSaved = impact.Baseline.TotalInterest - impact.WithExtra.TotalInterest
	}
	return impact
}

// AmortizationSchedule returns the month by month repayment schedule of m
// starting on, for at most maxMonths months (MaxAmortizationMonths if <= 0).
//
// Unlike CalculateMortgagePayoff, an unpayable loan is simulated with its
// unpaid interest added to the balance.
func AmortizationSchedule(m Mortgage, on date.Date, maxMonths int) []AmortizationRow {
	if maxMonths <= 0 || maxMonths > MaxAmortizationMonths {
		maxMonths = MaxAmortizationMonths
	}
	var rows []AmortizationRow
	amortize(m.Principal, m.MonthlyRate(), m.MonthlyPayment(), maxMonths, false, func(r AmortizationRow) {
		r.Date = on.AddMonth(r.Month)
		rows = append(rows, r)
	})
	return rows
}

// RemainingBalanceAfter returns the balance of m after months monthly
// repayments, never below zero.
func RemainingBalanceAfter(m Mortgage, months int) float64 {
	return amortize(m.Principal, m.MonthlyRate(), m.MonthlyPayment(), months, false, nil).balance
}
