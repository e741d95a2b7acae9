package compound

import "time"

// PaydayLine is a savings item of the budget, expressed per pay period.
type PaydayLine struct {
	ItemID       string
	Name         string
	WeeklyAmount float64
	PeriodAmount float64
	LinkedToType LinkType
	LinkedToID   string
}

// PlanPayday lists the top-level savings items of the complete budget of s,
// with their amount for one pay period of payFrequency.
func PlanPayday(s Store, payFrequency Frequency) ([]PaydayLine, error) {
	tree, err := NewBudgetTree(BuildCompleteBudgetItems(s))
	if err != nil {
		return nil, err
	}
	weeks := WeeksPerPeriod(payFrequency)
	var lines []PaydayLine
	for _, item := range tree.Roots() {
		if item.Category != Savings {
			continue
		}
		weekly := tree.EffectiveWeekly(item.ID)
		lines = append(lines, PaydayLine{
			ItemID:       item.ID,
			Name:         item.Name,
			WeeklyAmount: weekly,
			PeriodAmount: weekly * weeks,
			LinkedToType: item.LinkedToType,
			LinkedToID:   item.LinkedToID,
		})
	}
	return lines, nil
}

// allocated returns the amount put in line, adjusted by the user if
// adjustments has an entry for it. It is never negative.
func (l PaydayLine) allocated(adjustments map[string]float64) float64 {
	if v, ok := adjustments[l.ItemID]; ok {
		return max(0, v)
	}
	return max(0, l.PeriodAmount)
}

// PaydayBalances returns the balance of every savings bucket and investment
// linked from lines once the pay period's amounts are paid in at now.
//
// The pay replaces the contributions a projection would assume: a balance
// starts from its value grown since the last update, without contributions.
func PaydayBalances(s Store, lines []PaydayLine, adjustments map[string]float64, now time.Time) map[string]float64 {
	balances := make(map[string]float64)
	for _, l := range lines {
		switch l.LinkedToType {
		case LinkSavingsBucket:
			b, ok := s.SavingsBucket(l.LinkedToID)
			if !ok {
				continue
			}
			if _, done := balances[b.ID]; !done {
				balances[b.ID] = withoutContributions(ProjectCurrentBucketValue(b, now))
			}
			balances[b.ID] += l.allocated(adjustments)
		case LinkInvestment:
			inv, ok := s.Investment(l.LinkedToID)
			if !ok {
				continue
			}
			if _, done := balances[inv.ID]; !done {
				balances[inv.ID] = withoutContributions(ProjectCurrentInvestmentValue(inv, now))
			}
			balances[inv.ID] += l.allocated(adjustments)
		}
	}
	return balances
}

func withoutContributions(v ValueSnapshot) float64 {
	return v.ProjectedValue - v.ContributionsSinceUpdate
}

// ApplyPayday returns a store where the new balances of PaydayBalances are
// recorded as of now.
func ApplyPayday(s Store, lines []PaydayLine, adjustments map[string]float64, now time.Time) Store {
	at := TimestampOf(now)
	for id, balance := range PaydayBalances(s, lines, adjustments, now) {
		if b, ok := s.SavingsBucket(id); ok {
			b.CurrentAmount, b.CurrentAmountUpdatedAt, b.UpdatedAt = balance, at, at
			s = s.WithSavingsBucket(b)
			continue
		}
		if inv, ok := s.Investment(id); ok {
			inv.CurrentValue, inv.CurrentValueUpdatedAt, inv.UpdatedAt = balance, at, at
			s = s.WithInvestment(inv)
		}
	}
	return s
}
