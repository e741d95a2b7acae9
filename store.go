package compound

import (
	"fmt"
	"slices"
	"time"
)

// Store is the full set of records of a user.
//
// A Store is a value: the With* methods return a new Store and never write
// into the slices of the receiver.
type Store struct {
	Settings       UserSettings    `json:"settings"`
	BudgetItems    []BudgetItem    `json:"budgetItems"`
	SavingsBuckets []SavingsBucket `json:"savingsBuckets"`
	Investments    []Investment    `json:"investments"`
	Mortgages      []Mortgage      `json:"mortgages"`
	Goals          []Goal          `json:"goals"`
	SharedHousing  *SharedHousing  `json:"sharedHousing,omitempty"`
}

// NewStore returns an empty store with default settings.
func NewStore(now time.Time) Store {
	return Store{
		Settings:       DefaultSettings(now),
		BudgetItems:    []BudgetItem{},
		SavingsBuckets: []SavingsBucket{},
		Investments:    []Investment{},
		Mortgages:      []Mortgage{},
		Goals:          []Goal{},
	}
}

// upsert returns a copy of list where the element with the same id as v is
// replaced by v, or v appended.
func upsert[T any](list []T, v T, id func(T) string) []T {
	out := slices.Clone(list)
	if i := slices.IndexFunc(out, func(e T) bool { return id(e) == id(v) }); i >= 0 {
		out[i] = v
		return out
	}
	return append(out, v)
}

// WithBudgetItem returns a store where item is added or replaced.
// It fails if item's parent does not exist or would create a cycle.
func (s Store) WithBudgetItem(item BudgetItem) (Store, error) {
	if item.ID == "" {
		return s, fmt.Errorf("%w: %q", ErrMissingID, item.Name)
	}
	if err := ValidateParent(s.BudgetItems, item.ID, item.ParentID); err != nil {
		return s, err
	}
	s.BudgetItems = upsert(s.BudgetItems, item, func(b BudgetItem) string { return b.ID })
	return s, nil
}

// WithoutBudgetItem returns a store without the item id. Its children become top-level.
func (s Store) WithoutBudgetItem(id string) Store {
	items := make([]BudgetItem, 0, len(s.BudgetItems))
	for _, item := range s.BudgetItems {
		if item.ID == id {
			continue
		}
		if item.ParentID == id {
			item.ParentID = ""
		}
		items = append(items, item)
	}
	s.BudgetItems = items
	return s
}

// WithInvestment returns a store where inv is added or replaced.
func (s Store) WithInvestment(inv Investment) Store {
	s.Investments = upsert(s.Investments, inv, func(i Investment) string { return i.ID })
	return s
}

// WithSavingsBucket returns a store where b is added or replaced.
func (s Store) WithSavingsBucket(b SavingsBucket) Store {
	s.SavingsBuckets = upsert(s.SavingsBuckets, b, func(b SavingsBucket) string { return b.ID })
	return s
}

// WithMortgage returns a store where m is added or replaced.
func (s Store) WithMortgage(m Mortgage) Store {
	s.Mortgages = upsert(s.Mortgages, m, func(m Mortgage) string { return m.ID })
	return s
}

// WithGoal returns a store where g is added or replaced.
func (s Store) WithGoal(g Goal) Store {
	s.Goals = upsert(s.Goals, g, func(g Goal) string { return g.ID })
	return s
}

// AsOf returns a copy of s where every investment value, bucket amount and
// mortgage principal is replaced by its projection at now, recorded as of now.
func (s Store) AsOf(now time.Time) Store {
	at := TimestampOf(now)

	investments := make([]Investment, len(s.Investments))
	for i, inv := range s.Investments {
		inv.CurrentValue = ProjectCurrentInvestmentValue(inv, now).ProjectedValue
		inv.CurrentValueUpdatedAt = at
		investments[i] = inv
	}
	buckets := make([]SavingsBucket, len(s.SavingsBuckets))
	for i, b := range s.SavingsBuckets {
		b.CurrentAmount = ProjectCurrentBucketValue(b, now).ProjectedValue
		b.CurrentAmountUpdatedAt = at
		buckets[i] = b
	}
	mortgages := make([]Mortgage, len(s.Mortgages))
	for i, m := range s.Mortgages {
		m.Principal = ProjectCurrentMortgageBalance(m, now).ProjectedBalance
		m.PrincipalUpdatedAt = at
		mortgages[i] = m
	}
	s.Investments, s.SavingsBuckets, s.Mortgages = investments, buckets, mortgages
	return s
}

// Investment returns the investment with that id.
func (s Store) Investment(id string) (Investment, bool) {
	i := slices.IndexFunc(s.Investments, func(inv Investment) bool { return inv.ID == id })
	if i < 0 {
		return Investment{}, false
	}
	return s.Investments[i], true
}

// SavingsBucket returns the savings bucket with that id.
func (s Store) SavingsBucket(id string) (SavingsBucket, bool) {
	i := slices.IndexFunc(s.SavingsBuckets, func(b SavingsBucket) bool { return b.ID == id })
	if i < 0 {
		return SavingsBucket{}, false
	}
	return s.SavingsBuckets[i], true
}
