package compound

import (
	"math"
	"time"
)

// EmergencyFundTarget returns monthsOfExpenses months of necessities, from
// the weekly total of necessities.
func EmergencyFundTarget(necessityWeekly, monthsOfExpenses float64) float64 {
	return FromWeekly(necessityWeekly, Monthly) * monthsOfExpenses
}

// weeksUntil returns the weeks from now to deadline, never less than one.
func weeksUntil(deadline, now time.Time) float64 {
	return max(1, float64(deadline.Sub(now))/float64(week))
}

// WeeklyToReachGoal returns the weekly saving needed to go from current to
// target by targetDate, the current amount and the savings growing at
// annualReturnRate (a decimal). It is 0 if the target is already met, or will
// be met from growth alone.
//
// Deadlines less than a week away, or past, count as one week.
func WeeklyToReachGoal(target, current float64, targetDate, now time.Time, annualReturnRate float64) float64 {
	weeks := weeksUntil(targetDate, now)
	needed := target - current
	if needed <= 0 {
		return 0
	}
	if annualReturnRate == 0 {
		return needed / weeks
	}
	r := WeeklyRate(annualReturnRate)
	remaining := target - current*math.Pow(1+r, weeks)
	if remaining <= 0 {
		return 0
	}
	return remaining / annuityFactor(r, weeks)
}

// weeksToReach returns the number of weeks for value, receiving weekly
// contributions and growing at annualRate (a decimal), to reach target.
// It is +Inf if target is never reached.
func weeksToReach(value, weeklyContribution, annualRate, target float64) float64 {
	if value >= target {
		return 0
	}
	if annualRate == 0 {
		if weeklyContribution <= 0 {
			return math.Inf(1)
		}
		return (target - value) / weeklyContribution
	}
	// value*(1+r)^n + c*((1+r)^n-1)/r = target  <=>  (1+r)^n = (target*r+c)/(value*r+c)
	r := WeeklyRate(annualRate)
	num, den := target*r+weeklyContribution, value*r+weeklyContribution
	if den <= 0 || num/den <= 0 {
		return math.Inf(1)
	}
	n := math.Log(num/den) / math.Log(1+r)
	if n < 0 || math.IsNaN(n) {
		return math.Inf(1)
	}
	return n
}

// progress returns current/target capped to [0, 1]; an empty target is reached.
func progress(current, target float64) float64 {
	if target <= 0 {
		return 1
	}
	return min(1, max(0, current/target))
}

// GoalContext holds what goal evaluation needs beyond the goal itself.
type GoalContext struct {
	Now              time.Time
	NecessityWeekly  float64 // weekly necessities, for emergency funds
	AnnualReturnRate float64 // annual %, expected on the money saved for goals
}

// GoalStatus is the progress of a goal.
type GoalStatus struct {
	Goal           Goal
	Target         float64
	Current        float64
	Remaining      float64 // never negative
	Progress       float64 // from 0 to 1
	Reached        bool
	HasDeadline    bool
	WeeksRemaining float64 // only with a deadline
	WeeklyRequired float64 // only with a deadline
}

// EvaluateGoal computes the progress of g. An emergency fund with months of
// expenses targets that many months of necessities instead of its target amount.
// A goal has no contribution stream: its current amount is used as recorded,
// however old.
func EvaluateGoal(g Goal, ctx GoalContext) GoalStatus {
	target := g.TargetAmount
	if g.Type == EmergencyFund && g.MonthsOfExpenses > 0 {
		target = EmergencyFundTarget(ctx.NecessityWeekly, g.MonthsOfExpenses)
	}
	s := GoalStatus{
		Goal:      g,
		Target:    target,
		Current:   g.CurrentAmount,
		Remaining: max(0, target-g.CurrentAmount),
		Progress:  progress(g.CurrentAmount, target),
		Reached:   g.CurrentAmount >= target,
	}
	if !g.TargetDate.IsZero() {
		deadline := g.TargetDate.Time()
		s.HasDeadline = true
		s.WeeksRemaining = weeksUntil(deadline, ctx.Now)
		s.WeeklyRequired = WeeklyToReachGoal(target, g.CurrentAmount, deadline, ctx.Now, ctx.AnnualReturnRate/100)
	}
	return s
}

// BucketStatus is the progress of a savings bucket toward its target.
type BucketStatus struct {
	Bucket         SavingsBucket
	Snapshot       ValueSnapshot // amount projected to now
	Remaining      float64
	Progress       float64
	WeeksToTarget  float64 // at the current contribution, +Inf if never
	WeeklyRequired float64 // to meet the target date, if any
}

// BucketProgress evaluates b at now, from its projected current amount.
func BucketProgress(b SavingsBucket, now time.Time) BucketStatus {
	snap := ProjectCurrentBucketValue(b, now)
	current := snap.ProjectedValue
	rate := b.ExpectedReturnRate / 100
	s := BucketStatus{
		Bucket:        b,
		Snapshot:      snap,
		Remaining:     max(0, b.TargetAmount-current),
		Progress:      progress(current, b.TargetAmount),
		WeeksToTarget: weeksToReach(current, b.WeeklyContribution, rate, b.TargetAmount),
	}
	if !b.TargetDate.IsZero() {
		s.WeeklyRequired = WeeklyToReachGoal(b.TargetAmount, current, b.TargetDate.Time(), now, rate)
	}
	return s
}
