package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/compound"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

type overviewCmd struct{ reportFlags }

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "summarizes the budget, the wealth and the goals" }
func (*overviewCmd) Usage() string {
	return `compound overview [-d <date>] [-html]

  Prints the weekly cash flow, the current net wealth, the net wealth
  projected at retirement and how many goals are reached.

`
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, now, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	o, err := renderer.NewOverview(s, now, reportOptions(s))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid budget: %v\n", err)
		return subcommands.ExitFailure
	}
	return exit(c.print(renderer.RenderOverview(o)))
}

type budgetCmd struct{ reportFlags }

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "shows the weekly budget by category" }
func (*budgetCmd) Usage() string {
	return `compound budget [-d <date>] [-html]

  Prints every budget item in weekly amounts, grouped by category. Items with
  children are the sum of their children. Investments, savings buckets,
  mortgages and shared housing appear as linked items.

`
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	tree, err := compound.NewBudgetTree(compound.BuildCompleteBudgetItems(s))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid budget: %v\n", err)
		return subcommands.ExitFailure
	}
	return exit(c.print(renderer.BudgetMarkdown(tree, s.Settings.AfterTaxWeeklyIncome, reportOptions(s))))
}

type wealthCmd struct{ reportFlags }

func (*wealthCmd) Name() string     { return "wealth" }
func (*wealthCmd) Synopsis() string { return "shows investments, savings and mortgages as of a date" }
func (*wealthCmd) Usage() string {
	return `compound wealth [-d <date>] [-html]

  Prints the value of every investment, savings bucket and mortgage projected
  from its last update to the report date, and the projected wealth at
  retirement.

`
}

func (c *wealthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, now, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return exit(c.print(renderer.WealthMarkdown(renderer.NewWealth(s, now), reportOptions(s))))
}

type timelineCmd struct{ reportFlags }

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "projects the net wealth for every age until retirement" }
func (*timelineCmd) Usage() string {
	return `compound timeline [-d <date>] [-html]

  Prints one line per year of age, from today to the retirement age, with
  investments, property and mortgages in today's money.

`
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, now, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	points := compound.GenerateWealthProjection(compound.NewWealthInputs(s.AsOf(now)))
	return exit(c.print(renderer.TimelineMarkdown(points, reportOptions(s))))
}

type mortgageCmd struct {
	reportFlags
	id       string
	extra    float64
	schedule int
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "shows the payoff of mortgages and the impact of extra payments" }
func (*mortgageCmd) Usage() string {
	return `compound mortgage [-id <id>] [-extra <weekly amount>] [-schedule <months>] [-d <date>] [-html]

  Prints the payoff date, months remaining and total interest of every
  mortgage, from its balance projected to the report date.

Usage Examples:
# What would 50 more a week change?
$ compound mortgage -extra 50

`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.SetFlags(f)
	f.StringVar(&c.id, "id", "", "Only report the mortgage with this id or name.")
	f.Float64Var(&c.extra, "extra", 0, "Weekly extra payment to simulate.")
	f.IntVar(&c.schedule, "schedule", 0, "Number of months of the amortization schedule to print.")
}

func (c *mortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.extra < 0 || c.schedule < 0 {
		fmt.Fprintln(os.Stderr, "Error: -extra and -schedule cannot be negative")
		return subcommands.ExitUsageError
	}
	s, now, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	opts := reportOptions(s)
	var reports []string
	for _, m := range s.Mortgages {
		if c.id != "" && c.id != m.ID && !strings.EqualFold(c.id, m.Name) {
			continue
		}
		reports = append(reports, renderer.MortgageMarkdown(renderer.NewMortgageReport(m, now, c.extra, c.schedule), opts))
	}
	if len(reports) == 0 {
		fmt.Fprintln(os.Stderr, "No mortgage found.")
		return subcommands.ExitFailure
	}
	return exit(c.print(strings.Join(reports, "\n")))
}

type goalsCmd struct{ reportFlags }

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "shows the progress of goals and savings buckets" }
func (*goalsCmd) Usage() string {
	return `compound goals [-d <date>] [-html]

  Prints the progress of every goal, and the weekly amount required to meet
  the goals with a deadline. Emergency funds target months of necessities.

`
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, now, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	totals, err := compound.WeeklyByCategoryEffective(compound.BuildCompleteBudgetItems(s))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid budget: %v\n", err)
		return subcommands.ExitFailure
	}
	ctx := compound.GoalContext{Now: now, NecessityWeekly: totals.Necessity, AnnualReturnRate: compound.AverageReturnRate(s.Investments)}
	goals := make([]compound.GoalStatus, 0, len(s.Goals))
	for _, g := range s.Goals {
		goals = append(goals, compound.EvaluateGoal(g, ctx))
	}
	buckets := make([]compound.BucketStatus, 0, len(s.SavingsBuckets))
	for _, b := range s.SavingsBuckets {
		buckets = append(buckets, compound.BucketProgress(b, now))
	}
	return exit(c.print(renderer.GoalsMarkdown(goals, buckets, reportOptions(s))))
}

type housingCmd struct{ reportFlags }

func (*housingCmd) Name() string     { return "housing" }
func (*housingCmd) Synopsis() string { return "splits shared housing costs by income" }
func (*housingCmd) Usage() string {
	return `compound housing [-html]

  Prints how shared housing expenses are split between you and your partner,
  in proportion to your incomes.

`
}

func (c *housingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if s.SharedHousing == nil || !s.SharedHousing.Enabled {
		fmt.Fprintln(os.Stderr, "Shared housing is not enabled.")
		return subcommands.ExitFailure
	}
	a := compound.CalculateSharedHousing(*s.SharedHousing, s.Settings.AfterTaxWeeklyIncome)
	return exit(c.print(renderer.HousingMarkdown(a, reportOptions(s))))
}

// exit reports err and returns the matching exit status.
func exit(err error) subcommands.ExitStatus {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
