package renderer

import (
	"math"
	"time"

	"github.com/etnz/compound"
	"github.com/etnz/compound/date"
)

// Overview is the one page summary of a store, all amounts as of Date.
type Overview struct {
	Date date.Date

	WeeklyIncome Money
	Necessity    Money
	Cost         Money
	Savings      Money
	Uncommitted  Money

	Investments         Money
	SavingsBuckets      Money
	Property            Money
	Debt                Money
	NetWealth           Money
	RetirementAge       int
	RetirementNetWealth Money // in today's money

	Goals        int
	GoalsReached int
}

// NewOverview summarizes s as of now. Budget totals use the effective
// amounts of the complete budget, linked records included.
func NewOverview(s compound.Store, now time.Time, opts Options) (*Overview, error) {
	totals, err := compound.WeeklyByCategoryEffective(compound.BuildCompleteBudgetItems(s))
	if err != nil {
		return nil, err
	}
	current := s.AsOf(now)

	var investments, buckets, property, debt float64
	for _, inv := range current.Investments {
		investments += inv.CurrentValue
	}
	for _, b := range current.SavingsBuckets {
		buckets += b.CurrentAmount
	}
	for _, m := range current.Mortgages {
		property += m.PropertyValue
		debt += m.Principal
	}

	o := &Overview{
		Date:           date.Of(now),
		WeeklyIncome:   opts.M(s.Settings.AfterTaxWeeklyIncome),
		Necessity:      opts.M(totals.Necessity),
		Cost:           opts.M(totals.Cost),
		Savings:        opts.M(totals.Savings),
		Uncommitted:    opts.M(compound.UncommittedIncome(s.Settings.AfterTaxWeeklyIncome, totals)),
		Investments:    opts.M(investments),
		SavingsBuckets: opts.M(buckets),
		Property:       opts.M(property),
		Debt:           opts.M(debt),
		NetWealth:      opts.M(investments + buckets + property - debt),
		Goals:          len(s.Goals),
	}

	timeline := compound.GenerateWealthProjection(compound.NewWealthInputs(current))
	last := timeline[len(timeline)-1]
	o.RetirementAge = last.Age
	o.RetirementNetWealth = opts.M(math.Round(last.NetWealth))

	ctx := compound.GoalContext{Now: now, NecessityWeekly: totals.Necessity, AnnualReturnRate: compound.AverageReturnRate(s.Investments)}
	for _, g := range s.Goals {
		if compound.EvaluateGoal(g, ctx).Reached {
			o.GoalsReached++
		}
	}
	return o, nil
}
