package compound

import (
	"errors"
	"fmt"
)

var (
	// ErrBudgetCycle is returned when parent references form a cycle.
	ErrBudgetCycle = errors.New("budget items form a parent cycle")
	// ErrDuplicateItem is returned when two budget items share an id.
	ErrDuplicateItem = errors.New("duplicate budget item id")
	// ErrUnknownItem is returned when an id does not match any budget item.
	ErrUnknownItem = errors.New("unknown budget item")
	// ErrMissingID is returned for a budget item without id.
	ErrMissingID = errors.New("budget item has no id")
)

// CategoryTotals holds weekly amounts per budget category.
type CategoryTotals struct {
	Necessity float64
	Cost      float64
	Savings   float64
}

// Add adds weekly to category c. Unknown categories are ignored.
func (t *CategoryTotals) Add(c Category, weekly float64) {
	switch c {
	case Necessity:
		t.Necessity += weekly
	case Cost:
		t.Cost += weekly
	case Savings:
		t.Savings += weekly
	}
}

// Get returns the total of category c.
func (t CategoryTotals) Get(c Category) float64 {
	switch c {
	case Necessity:
		return t.Necessity
	case Cost:
		return t.Cost
	case Savings:
		return t.Savings
	}
	return 0
}

// Total returns the sum of all categories.
func (t CategoryTotals) Total() float64 { return t.Necessity + t.Cost + t.Savings }

// WeeklyByCategory sums the weekly amount of every item per category,
// ignoring the parent/child hierarchy.
func WeeklyByCategory(items []BudgetItem) CategoryTotals {
	var t CategoryTotals
	for _, item := range items {
		t.Add(item.Category, item.Weekly())
	}
	return t
}

// UncommittedIncome returns what is left of weeklyIncome once every category
// is paid for. A negative result means the budget is overspent.
func UncommittedIncome(weeklyIncome float64, totals CategoryTotals) float64 {
	return weeklyIncome - totals.Total()
}

// BudgetTree is the validated parent/child hierarchy of budget items.
//
// Items whose parent id does not match any item are treated as top-level.
type BudgetTree struct {
	items    map[string]BudgetItem
	order    []string // input order
	children map[string][]string
}

// NewBudgetTree indexes items and checks that their parent references are acyclic.
func NewBudgetTree(items []BudgetItem) (*BudgetTree, error) {
	t := &BudgetTree{
		items:    make(map[string]BudgetItem, len(items)),
		order:    make([]string, 0, len(items)),
		children: make(map[string][]string),
	}
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingID, item.Name)
		}
		if _, exists := t.items[item.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItem, item.ID)
		}
		t.items[item.ID] = item
		t.order = append(t.order, item.ID)
	}
	for _, id := range t.order {
		if err := t.checkAncestors(id); err != nil {
			return nil, err
		}
		if parent, ok := t.parent(id); ok {
			t.children[parent] = append(t.children[parent], id)
		}
	}
	return t, nil
}

// parent returns the id of the parent of id, if it exists in the tree.
func (t *BudgetTree) parent(id string) (string, bool) {
	p := t.items[id].ParentID
	if p == "" {
		return "", false
	}
	_, ok := t.items[p]
	return p, ok
}

// checkAncestors walks up from id and fails if it comes back to an item already seen.
func (t *BudgetTree) checkAncestors(id string) error {
	seen := map[string]bool{}
	for cur, ok := id, true; ok; cur, ok = t.parent(cur) {
		if seen[cur] {
			return fmt.Errorf("%w: item %q is its own ancestor", ErrBudgetCycle, cur)
		}
		seen[cur] = true
	}
	return nil
}

// Item returns the item with that id.
func (t *BudgetTree) Item(id string) (BudgetItem, bool) {
	item, ok := t.items[id]
	return item, ok
}

// IsAuto reports whether id has children, and is therefore auto-calculated.
func (t *BudgetTree) IsAuto(id string) bool { return len(t.children[id]) > 0 }

// Children returns the direct children of id, in input order.
func (t *BudgetTree) Children(id string) []BudgetItem { return t.lookup(t.children[id]) }

// Roots returns the top-level items, in input order.
func (t *BudgetTree) Roots() []BudgetItem {
	var roots []string
	for _, id := range t.order {
		if _, ok := t.parent(id); !ok {
			roots = append(roots, id)
		}
	}
	return t.lookup(roots)
}

func (t *BudgetTree) lookup(ids []string) []BudgetItem {
	items := make([]BudgetItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, t.items[id])
	}
	return items
}

// EffectiveWeekly returns the weekly amount of id: its own for a leaf, the sum
// of its children's effective amounts for an auto-calculated parent.
// It is 0 for an unknown id.
func (t *BudgetTree) EffectiveWeekly(id string) float64 {
	children := t.children[id]
	if len(children) == 0 {
		return t.items[id].Weekly()
	}
	var sum float64
	for _, c := range children {
		sum += t.EffectiveWeekly(c)
	}
	return sum
}

// addLeaves credits every leaf under id to its own category.
func (t *BudgetTree) addLeaves(id string, totals *CategoryTotals) {
	children := t.children[id]
	if len(children) == 0 {
		item := t.items[id]
		totals.Add(item.Category, item.Weekly())
		return
	}
	for _, c := range children {
		t.addLeaves(c, totals)
	}
}

// WeeklyByCategory returns the effective weekly totals per category.
// Parents contribute nothing of their own and each leaf counts in its own
// category, so nothing is counted twice.
func (t *BudgetTree) WeeklyByCategory() CategoryTotals {
	var totals CategoryTotals
	for _, root := range t.Roots() {
		t.addLeaves(root.ID, &totals)
	}
	return totals
}

// EffectiveWeeklyAmount returns the effective weekly amount of item within items.
func EffectiveWeeklyAmount(item BudgetItem, items []BudgetItem) (float64, error) {
	t, err := NewBudgetTree(items)
	if err != nil {
		return 0, err
	}
	if _, ok := t.Item(item.ID); !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, item.ID)
	}
	return t.EffectiveWeekly(item.ID), nil
}

// WeeklyByCategoryEffective returns the weekly totals per category resolving
// auto-calculated parents from their children.
func WeeklyByCategoryEffective(items []BudgetItem) (CategoryTotals, error) {
	t, err := NewBudgetTree(items)
	if err != nil {
		return CategoryTotals{}, err
	}
	return t.WeeklyByCategory(), nil
}

// ValidateParent checks that making parentID the parent of childID keeps items acyclic.
// An empty parentID is always valid.
func ValidateParent(items []BudgetItem, childID, parentID string) error {
	if parentID == "" {
		return nil
	}
	if parentID == childID {
		return fmt.Errorf("%w: %q cannot be its own parent", ErrBudgetCycle, childID)
	}
	parents := make(map[string]string, len(items))
	for _, item := range items {
		parents[item.ID] = item.ParentID
	}
	if _, ok := parents[parentID]; !ok {
		return fmt.Errorf("%w: parent %q", ErrUnknownItem, parentID)
	}
	seen := map[string]bool{}
	for cur := parentID; cur != ""; cur = parents[cur] {
		if cur == childID {
			return fmt.Errorf("%w: %q cannot be a child of %q", ErrBudgetCycle, childID, parentID)
		}
		if seen[cur] {
			// an existing cycle above, not involving childID
			return fmt.Errorf("%w: item %q is its own ancestor", ErrBudgetCycle, cur)
		}
		seen[cur] = true
	}
	return nil
}
