package compound

// Projection is a future amount in nominal and in today's (real) terms.
type Projection struct {
	Nominal float64
	Real    float64
}

// ProjectInvestment projects inv forward by years, net of fees.
// inflationRate is an annual percentage (2.5 for 2.5%).
//
// A negative net return is valid and shrinks the value.
func ProjectInvestment(inv Investment, years, inflationRate float64) Projection {
	nominal := TotalFutureValue(inv.CurrentValue, inv.WeeklyContribution, inv.NetReturnRate(), years)
	return Projection{
		Nominal: nominal,
		Real:    AdjustForInflation(nominal, inflationRate/100, years),
	}
}

// SavingsPoint is the cumulated value of regular contributions at the end of a year.
type SavingsPoint struct {
	Year        int
	Nominal     float64
	Contributed float64
}

// CumulativeSavings returns, for each year from 1 to years, the value of a
// weekly contribution growing at annualReturnRate (a percentage).
func CumulativeSavings(weeklyContribution, annualReturnRate float64, years int) []SavingsPoint {
	points := make([]SavingsPoint, 0, max(years, 0))
	for y := 1; y <= years; y++ {
		points = append(points, SavingsPoint{
			Year:        y,
			Nominal:     FutureValueOfContributions(weeklyContribution, annualReturnRate/100, float64(y)),
			Contributed: weeklyContribution * WeeksPerYear * float64(y),
		})
	}
	return points
}

// AverageReturnRate returns the expected return rate of investments weighted
// by their weekly contribution. It is 0 when nothing is contributed.
func AverageReturnRate(investments []Investment) float64 {
	var weighted, total float64
	for _, inv := range investments {
		weighted += inv.ExpectedReturnRate * inv.WeeklyContribution
		total += inv.WeeklyContribution
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
