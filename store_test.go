package compound

import (
	"errors"
	"testing"
)

func TestStore_WithBudgetItem(t *testing.T) {
	s := NewStore(now)
	var err error
	for _, it := range []BudgetItem{item("a", 1, Weekly, Cost), child("b", "a", 2, Weekly, Cost)} {
		if s, err = s.WithBudgetItem(it); err != nil {
			t.Fatalf("WithBudgetItem(%q) failed: %v", it.ID, err)
		}
	}

	testCases := []struct {
		name string
		item BudgetItem
		want error
	}{
		{"cycle", child("a", "b", 1, Weekly, Cost), ErrBudgetCycle},
		{"own parent", child("c", "c", 1, Weekly, Cost), ErrBudgetCycle},
		{"unknown parent", child("c", "zz", 1, Weekly, Cost), ErrUnknownItem},
		{"missing id", item("", 1, Weekly, Cost), ErrMissingID},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.WithBudgetItem(tc.item)
			if !errors.Is(err, tc.want) {
				t.Errorf("WithBudgetItem() error = %v, want %v", err, tc.want)
			}
			assertDiff(t, "store after rejected item", got.BudgetItems, s.BudgetItems)
		})
	}

	updated, err := s.WithBudgetItem(item("b", 5, Weekly, Cost))
	if err != nil {
		t.Fatalf("WithBudgetItem(b) failed: %v", err)
	}
	if len(updated.BudgetItems) != 2 || updated.BudgetItems[1].Amount != 5 || updated.BudgetItems[1].ParentID != "" {
		t.Errorf("WithBudgetItem() replace = %+v, want b moved to the top level", updated.BudgetItems)
	}
	if s.BudgetItems[1].Amount != 2 {
		t.Errorf("WithBudgetItem() modified the receiver")
	}
}

func TestStore_WithoutBudgetItem(t *testing.T) {
	s := NewStore(now)
	s.BudgetItems = []BudgetItem{
		item("subs", 0, Monthly, Cost),
		child("netflix", "subs", 15, Monthly, Cost),
		item("rent", 500, Weekly, Necessity),
	}
	got := s.WithoutBudgetItem("subs")
	want := []BudgetItem{item("netflix", 15, Monthly, Cost), item("rent", 500, Weekly, Necessity)}
	assertDiff(t, "WithoutBudgetItem()", got.BudgetItems, want)
	if s.BudgetItems[1].ParentID != "subs" {
		t.Errorf("WithoutBudgetItem() modified the receiver")
	}
}

func TestStore_WithRecords(t *testing.T) {
	s := NewStore(now).WithInvestment(etf()).WithMortgage(homeLoan())
	s = s.WithSavingsBucket(SavingsBucket{ID: "car", TargetAmount: 5000})
	s = s.WithGoal(Goal{ID: "ef", Type: EmergencyFund})

	inv := etf()
	inv.CurrentValue = 12000
	s2 := s.WithInvestment(inv)
	if len(s2.Investments) != 1 || s2.Investments[0].CurrentValue != 12000 {
		t.Errorf("WithInvestment() replace = %+v, want one investment at 12000", s2.Investments)
	}
	if got, ok := s.Investment("etf"); !ok || got.CurrentValue != 10000 {
		t.Errorf("Investment(etf) = %+v, %v, want the original value", got, ok)
	}
	if _, ok := s.SavingsBucket("car"); !ok {
		t.Errorf("SavingsBucket(car) not found")
	}
	if _, ok := s.SavingsBucket("boat"); ok {
		t.Errorf("SavingsBucket(boat) found, want not found")
	}
	if len(s.Mortgages) != 1 || len(s.Goals) != 1 {
		t.Errorf("store = %+v, want one mortgage and one goal", s)
	}
}

func TestStore_AsOf(t *testing.T) {
	s := NewStore(now)
	inv := etf()
	inv.CurrentValueUpdatedAt = weeksAgo(52)
	m := homeLoan()
	m.PrincipalUpdatedAt = weeksAgo(9)
	s = s.WithInvestment(inv).WithMortgage(m)
	s = s.WithSavingsBucket(SavingsBucket{ID: "car", CurrentAmount: 100, WeeklyContribution: 10, CurrentAmountUpdatedAt: weeksAgo(4)})

	got := s.AsOf(now)
	assertClose(t, "investment", got.Investments[0].CurrentValue, ProjectCurrentInvestmentValue(inv, now).ProjectedValue)
	assertClose(t, "mortgage", got.Mortgages[0].Principal, RemainingBalanceAfter(m, 2))
	assertClose(t, "bucket", got.SavingsBuckets[0].CurrentAmount, 140)

	// projecting again at the same instant changes nothing
	assertDiff(t, "AsOf() twice", got.AsOf(now), got)

	if s.Investments[0].CurrentValue != 10000 {
		t.Errorf("AsOf() modified the receiver")
	}
}
