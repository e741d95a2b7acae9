package compound

// HousingLine is one shared expense split between the two parties.
type HousingLine struct {
	Expense      HouseExpense
	Weekly       float64
	YourShare    float64
	PartnerShare float64
}

// HousingAllocation is the split of shared housing costs, all amounts weekly.
type HousingAllocation struct {
	TotalWeekly  float64
	YourRatio    float64
	PartnerRatio float64
	YourShare    float64
	PartnerShare float64
	Lines        []HousingLine
}

// IncomeRatio returns own's share of the combined income of own and other.
// Without any income the split is even.
func IncomeRatio(own, other float64) float64 {
	combined := own + other
	if combined == 0 {
		return 0.5
	}
	return own / combined
}

// CalculateSharedHousing splits the housing expenses of h between you and
// your partner in proportion to your weekly incomes.
//
// Ratios sum to exactly 1, and so do the shares of the total and of every line.
func CalculateSharedHousing(h SharedHousing, yourWeeklyIncome float64) HousingAllocation {
	ratio := IncomeRatio(yourWeeklyIncome, h.PartnerWeeklyIncome)
	a := HousingAllocation{
		YourRatio:    ratio,
		PartnerRatio: 1 - ratio,
		Lines:        make([]HousingLine, 0, len(h.Expenses)),
	}
	for _, e := range h.Expenses {
		weekly := ToWeekly(e.Amount, e.Frequency)
		yours := weekly * ratio
		a.Lines = append(a.Lines, HousingLine{
			Expense:      e,
			Weekly:       weekly,
			YourShare:    yours,
			PartnerShare: weekly - yours,
		})
		a.TotalWeekly += weekly
	}
	a.YourShare = a.TotalWeekly * ratio
	a.PartnerShare = a.TotalWeekly - a.YourShare
	return a
}
