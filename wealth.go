package compound

import "math"

// WealthInputs are the records and assumptions a wealth projection depends on.
type WealthInputs struct {
	CurrentAge         int
	RetirementAge      int
	Investments        []Investment
	Mortgages          []Mortgage
	InflationRate      float64 // annual %
	PropertyGrowthRate float64 // annual %
}

// NewWealthInputs returns the wealth inputs of s. Property grows with
// inflation unless the settings say otherwise.
func NewWealthInputs(s Store) WealthInputs {
	in := WealthInputs{
		CurrentAge:         int(math.Floor(s.Settings.Age)),
		RetirementAge:      int(math.Floor(s.Settings.RetirementAge)),
		Investments:        s.Investments,
		Mortgages:          s.Mortgages,
		InflationRate:      s.Settings.InflationRate,
		PropertyGrowthRate: s.Settings.InflationRate,
	}
	if g := s.Settings.PropertyGrowthRate; g != nil {
		in.PropertyGrowthRate = *g
	}
	return in
}

// WealthPoint is the wealth at a given age, in today's money.
type WealthPoint struct {
	Age         int
	Investments float64
	Property    float64
	Debt        float64
	NetWealth   float64
}

// GenerateWealthProjection returns one point per age from the current age to
// the retirement age included, all values inflation adjusted.
//
// The current age uses the recorded values as is. Each later age projects the
// investments and re-simulates every mortgage for that many years.
func GenerateWealthProjection(in WealthInputs) []WealthPoint {
	var property, debt, investments float64
	for _, m := range in.Mortgages {
		property += m.PropertyValue
		debt += m.Principal
	}
	for _, inv := range in.Investments {
		investments += inv.CurrentValue
	}

	points := make([]WealthPoint, 0, max(1, in.RetirementAge-in.CurrentAge+1))
	points = append(points, WealthPoint{
		Age:         in.CurrentAge,
		Investments: investments,
		Property:    property,
		Debt:        debt,
		NetWealth:   investments + property - debt,
	})

	// past retirement age the timeline is today's point alone
	inflation := in.InflationRate / 100
	for age := in.CurrentAge + 1; age <= in.RetirementAge; age++ {
		years := float64(age - in.CurrentAge)
		p := WealthPoint{
			Age:      age,
			Property: AdjustForInflation(FutureValue(property, in.PropertyGrowthRate/100, years), inflation, years),
		}
		for _, inv := range in.Investments {
			p.Investments += ProjectInvestment(inv, years, in.InflationRate).Real
		}
		for _, m := range in.Mortgages {
			p.Debt += AdjustForInflation(RemainingBalanceAfter(m, (age-in.CurrentAge)*12), inflation, years)
		}
		p.NetWealth = p.Investments + p.Property - p.Debt
		points = append(points, p)
	}
	return points
}

// WealthAtAge is the projected wealth at a single age.
type WealthAtAge struct {
	Nominal           float64 // investments
	Real              float64 // investments, in today's money
	MortgageRemaining float64
	NetWealth         float64
	NetWealthReal     float64
}

// ProjectWealthAtAge projects investments and mortgages from currentAge to
// targetAge. inflationRate is an annual percentage.
func ProjectWealthAtAge(currentAge, targetAge float64, investments []Investment, mortgages []Mortgage, inflationRate float64) WealthAtAge {
	years := targetAge - currentAge
	if years <= 0 {
		var value, debt float64
		for _, inv := range investments {
			value += inv.CurrentValue
		}
		for _, m := range mortgages {
			debt += m.Principal
		}
		return WealthAtAge{
			Nominal:           value,
			Real:              value,
			MortgageRemaining: debt,
			NetWealth:         value - debt,
			NetWealthReal:     value - debt,
		}
	}

	var w WealthAtAge
	for _, inv := range investments {
		p := ProjectInvestment(inv, years, inflationRate)
		w.Nominal += p.Nominal
		w.Real += p.Real
	}
	months := int(math.Ceil(years * 12))
	for _, m := range mortgages {
		w.MortgageRemaining += RemainingBalanceAfter(m, months)
	}
	w.NetWealth = w.Nominal - w.MortgageRemaining
	w.NetWealthReal = w.Real - AdjustForInflation(w.MortgageRemaining, inflationRate/100, years)
	return w
}
