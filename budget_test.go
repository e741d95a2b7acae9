package compound

import (
	"errors"
	"testing"
)

// subscriptions is an auto-calculated parent whose own amount must be ignored.
func subscriptions() []BudgetItem {
	return []BudgetItem{
		item("rent", 600, Weekly, Necessity),
		item("subscriptions", 999, Monthly, Cost),
		child("netflix", "subscriptions", 15, Monthly, Cost),
		child("spotify", "subscriptions", 12, Monthly, Cost),
	}
}

func TestBudgetTree_Subscriptions(t *testing.T) {
	tree, err := NewBudgetTree(subscriptions())
	if err != nil {
		t.Fatalf("NewBudgetTree() failed: %v", err)
	}
	children := ToWeekly(15, Monthly) + ToWeekly(12, Monthly)

	if !tree.IsAuto("subscriptions") {
		t.Errorf("IsAuto(subscriptions) = false, want true")
	}
	if tree.IsAuto("netflix") {
		t.Errorf("IsAuto(netflix) = true, want false")
	}
	assertClose(t, "EffectiveWeekly(subscriptions)", tree.EffectiveWeekly("subscriptions"), children)
	assertClose(t, "EffectiveWeekly(netflix)", tree.EffectiveWeekly("netflix"), ToWeekly(15, Monthly))

	totals := tree.WeeklyByCategory()
	assertDiff(t, "WeeklyByCategory()", totals, CategoryTotals{Necessity: 600, Cost: children})

	if got := len(tree.Roots()); got != 2 {
		t.Errorf("len(Roots()) = %d, want 2", got)
	}
	if got := tree.Children("subscriptions"); len(got) != 2 || got[0].ID != "netflix" || got[1].ID != "spotify" {
		t.Errorf("Children(subscriptions) = %v, want netflix, spotify", got)
	}
}

func TestWeeklyByCategory_Flat(t *testing.T) {
	// flat mode ignores the hierarchy, the parent amount is counted too.
	got := WeeklyByCategory(subscriptions())
	want := CategoryTotals{
		Necessity: 600,
		Cost:      ToWeekly(999, Monthly) + ToWeekly(15, Monthly) + ToWeekly(12, Monthly),
	}
	assertDiff(t, "WeeklyByCategory()", got, want)
}

func TestWeeklyByCategoryEffective_LeafCategoryWins(t *testing.T) {
	items := []BudgetItem{
		item("car", 0, Weekly, Cost),
		child("fuel", "car", 60, Weekly, Necessity),
		child("car-savings", "car", 100, Fortnightly, Savings),
	}
	got, err := WeeklyByCategoryEffective(items)
	if err != nil {
		t.Fatalf("WeeklyByCategoryEffective() failed: %v", err)
	}
	assertDiff(t, "WeeklyByCategoryEffective()", got, CategoryTotals{Necessity: 60, Savings: 50})
}

func TestBudgetTree_Consistency(t *testing.T) {
	// a deeper tree than the application creates, with an orphan
	items := []BudgetItem{
		item("home", 1, Weekly, Necessity),
		child("utilities", "home", 1, Weekly, Necessity),
		child("power", "utilities", 200, Monthly, Necessity),
		child("internet", "utilities", 80, Monthly, Cost),
		child("insurance", "home", 1300, Yearly, Necessity),
		item("gym", 20, Weekly, Cost),
		child("lost", "deleted-parent", 10, Weekly, Savings),
	}
	tree, err := NewBudgetTree(items)
	if err != nil {
		t.Fatalf("NewBudgetTree() failed: %v", err)
	}

	var roots float64
	for _, r := range tree.Roots() {
		roots += tree.EffectiveWeekly(r.ID)
	}
	var leaves float64
	for _, it := range items {
		if !tree.IsAuto(it.ID) {
			leaves += it.Weekly()
		}
	}
	assertClose(t, "sum over roots", roots, leaves)
	assertClose(t, "category totals", tree.WeeklyByCategory().Total(), leaves)
	assertClose(t, "EffectiveWeekly(utilities)", tree.EffectiveWeekly("utilities"), ToWeekly(200, Monthly)+ToWeekly(80, Monthly))

	if _, ok := tree.Item("lost"); !ok {
		t.Errorf("Item(lost) not found")
	}
	if len(tree.Roots()) != 3 {
		t.Errorf("Roots() = %v, want home, gym and the orphan", tree.Roots())
	}
}

func TestNewBudgetTree_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		items []BudgetItem
		want  error
	}{
		{"self parent", []BudgetItem{child("a", "a", 1, Weekly, Cost)}, ErrBudgetCycle},
		{"two cycle", []BudgetItem{child("a", "b", 1, Weekly, Cost), child("b", "a", 1, Weekly, Cost)}, ErrBudgetCycle},
		{"cycle below a root", []BudgetItem{
			item("root", 1, Weekly, Cost),
			child("x", "z", 1, Weekly, Cost),
			child("y", "x", 1, Weekly, Cost),
			child("z", "y", 1, Weekly, Cost),
		}, ErrBudgetCycle},
		{"duplicate", []BudgetItem{item("a", 1, Weekly, Cost), item("a", 2, Weekly, Cost)}, ErrDuplicateItem},
		{"missing id", []BudgetItem{item("", 1, Weekly, Cost)}, ErrMissingID},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBudgetTree(tc.items)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewBudgetTree() error = %v, want %v", err, tc.want)
			}
			if _, err := WeeklyByCategoryEffective(tc.items); !errors.Is(err, tc.want) {
				t.Errorf("WeeklyByCategoryEffective() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEffectiveWeeklyAmount(t *testing.T) {
	items := subscriptions()
	got, err := EffectiveWeeklyAmount(items[1], items)
	if err != nil {
		t.Fatalf("EffectiveWeeklyAmount() failed: %v", err)
	}
	assertClose(t, "EffectiveWeeklyAmount(subscriptions)", got, ToWeekly(27, Monthly))

	if _, err := EffectiveWeeklyAmount(item("ghost", 1, Weekly, Cost), items); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("EffectiveWeeklyAmount(ghost) error = %v, want ErrUnknownItem", err)
	}
}

func TestValidateParent(t *testing.T) {
	items := []BudgetItem{
		item("a", 1, Weekly, Cost),
		child("b", "a", 1, Weekly, Cost),
		child("c", "b", 1, Weekly, Cost),
	}
	testCases := []struct {
		name          string
		child, parent string
		want          error
	}{
		{"no parent", "a", "", nil},
		{"new leaf", "d", "c", nil},
		{"move", "c", "a", nil},
		{"self", "a", "a", ErrBudgetCycle},
		{"under own descendant", "a", "c", ErrBudgetCycle},
		{"unknown parent", "d", "zz", ErrUnknownItem},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateParent(items, tc.child, tc.parent)
			if !errors.Is(err, tc.want) {
				t.Errorf("ValidateParent(%q, %q) error = %v, want %v", tc.child, tc.parent, err, tc.want)
			}
		})
	}
}

func TestUncommittedIncome(t *testing.T) {
	totals := CategoryTotals{Necessity: 700, Cost: 250, Savings: 300}
	assertClose(t, "surplus", UncommittedIncome(1500, totals), 250)
	assertClose(t, "overspent", UncommittedIncome(1000, totals), -250)
}

func TestCategoryTotals_UnknownCategory(t *testing.T) {
	var totals CategoryTotals
	totals.Add("luxury", 100)
	totals.Add(Savings, 10)
	if totals.Total() != 10 || totals.Get(Savings) != 10 || totals.Get("luxury") != 0 {
		t.Errorf("CategoryTotals = %+v, want only savings counted", totals)
	}
}
