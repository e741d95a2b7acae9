package compound

import (
	"slices"
	"strconv"
)

// Investments, savings buckets, mortgages and shared housing all cost money
// every week. The budget shows them as virtual items, unless the user already
// mirrors them with a manual item linked to them.

// LinkedIDs returns the set of record ids that manual items already link to.
func LinkedIDs(items []BudgetItem) map[string]bool {
	linked := make(map[string]bool)
	for _, item := range items {
		if item.LinkedToID != "" {
			linked[item.LinkedToID] = true
		}
	}
	return linked
}

// houseExpenseKey returns the id of the i-th house expense, made up from its
// position if it has none.
func houseExpenseKey(i int, e HouseExpense) string {
	if e.ID != "" {
		return e.ID
	}
	return "expense-" + strconv.Itoa(i)
}

func virtualItem(t LinkType, id, name string, weekly float64, c Category) BudgetItem {
	return BudgetItem{
		ID:           string(t) + ":" + id,
		Name:         name,
		Amount:       weekly,
		Frequency:    Weekly,
		Category:     c,
		LinkedToID:   id,
		LinkedToType: t,
		Virtual:      true,
	}
}

// SynthesizeLinkedItems returns one virtual budget item per investment, savings
// bucket, mortgage and shared housing expense that costs something every week
// and whose id is not in linked.
func SynthesizeLinkedItems(s Store, linked map[string]bool) []BudgetItem {
	var items []BudgetItem
	for _, inv := range s.Investments {
		if inv.WeeklyContribution == 0 || linked[inv.ID] {
			continue
		}
		items = append(items, virtualItem(LinkInvestment, inv.ID, inv.Name, inv.WeeklyContribution, Savings))
	}
	for _, b := range s.SavingsBuckets {
		if b.WeeklyContribution == 0 || linked[b.ID] {
			continue
		}
		items = append(items, virtualItem(LinkSavingsBucket, b.ID, b.Name, b.WeeklyContribution, Savings))
	}
	for _, m := range s.Mortgages {
		weekly := m.WeeklyPayment + m.ExtraWeeklyPayment
		if weekly == 0 || linked[m.ID] {
			continue
		}
		items = append(items, virtualItem(LinkMortgage, m.ID, m.Name, weekly, Necessity))
	}
	if h := s.SharedHousing; h != nil && h.Enabled {
		alloc := CalculateSharedHousing(*h, s.Settings.AfterTaxWeeklyIncome)
		for i, line := range alloc.Lines {
			key := houseExpenseKey(i, line.Expense)
			if line.YourShare == 0 || linked[key] {
				continue
			}
			c := line.Expense.Category
			if c == "" {
				c = Necessity
			}
			items = append(items, virtualItem(LinkHousing, key, line.Expense.Name, line.YourShare, c))
		}
	}
	return items
}

// BuildCompleteBudgetItems returns the manual budget items of s followed by
// the virtual items of everything they do not already mirror.
func BuildCompleteBudgetItems(s Store) []BudgetItem {
	virtual := SynthesizeLinkedItems(s, LinkedIDs(s.BudgetItems))
	return append(slices.Clone(s.BudgetItems), virtual...)
}
