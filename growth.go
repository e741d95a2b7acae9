package compound

import "math"

// All rates in this file are decimals: 0.07 for 7%.

// WeeksPerYear is the number of compounding periods per year.
const WeeksPerYear = 52

// FutureValue returns the value of a lump sum pv after years at annualRate.
//
//	FV = PV * (1 + r)^n
func FutureValue(pv, annualRate, years float64) float64 {
	return pv * math.Pow(1+annualRate, years)
}

// WeeklyRate returns the weekly compounding rate equivalent to annualRate.
func WeeklyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/WeeksPerYear) - 1
}

// annuityFactor returns ((1+r)^n - 1) / r, or n when r is zero.
func annuityFactor(weeklyRate, weeks float64) float64 {
	if weeklyRate == 0 {
		return weeks
	}
	return (math.Pow(1+weeklyRate, weeks) - 1) / weeklyRate
}

// FutureValueOfContributions returns the future value of a weekly contribution
// made for years at annualRate.
//
//	FV = P * ((1 + r)^n - 1) / r
//
// with r the weekly rate and n = years*52. A zero rate is a plain sum.
func FutureValueOfContributions(weeklyContribution, annualRate, years float64) float64 {
	if annualRate == 0 {
		return weeklyContribution * WeeksPerYear * years
	}
	return weeklyContribution * annuityFactor(WeeklyRate(annualRate), years*WeeksPerYear)
}

// TotalFutureValue returns the future value of an existing balance plus weekly contributions.
func TotalFutureValue(current, weeklyContribution, annualRate, years float64) float64 {
	return FutureValue(current, annualRate, years) + FutureValueOfContributions(weeklyContribution, annualRate, years)
}

// AdjustForInflation converts an amount in years into today's purchasing power.
func AdjustForInflation(futureAmount, inflationRate, years float64) float64 {
	return futureAmount / math.Pow(1+inflationRate, years)
}
