package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/etnz/compound"
	"github.com/etnz/compound/date"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// recordFlags are the flags shared by the commands that create records.
type recordFlags struct {
	id    string
	name  string
	notes string
}

func (r *recordFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.id, "id", "", "Record id. A new random id is used by default. An existing id replaces the record.")
	f.StringVar(&r.name, "name", "", "Record name (required).")
	f.StringVar(&r.notes, "notes", "", "Free notes.")
}

// recordID returns the id of the record, a new one if none was given.
func (r *recordFlags) recordID() string {
	if r.id != "" {
		return r.id
	}
	return uuid.NewString()
}

// timestamp parses a date flag. An empty flag is the zero timestamp,
// today is now.
func timestamp(v string, now time.Time) (compound.Timestamp, error) {
	if v == "" {
		return 0, nil
	}
	d, err := date.Parse(v)
	if err != nil {
		return 0, err
	}
	if d.IsToday() {
		return compound.TimestampOf(now), nil
	}
	return compound.TimestampOf(d.Time()), nil
}

// save encodes s and prints what was saved.
func save(s compound.Store, now time.Time, format string, args ...any) subcommands.ExitStatus {
	if err := EncodeStore(s, now); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(output, format+"\n", args...)
	return subcommands.ExitSuccess
}

type settingsCmd struct {
	age, retire, income, inflation, propertyGrowth float64
	currency, pay                                  string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "updates the profile and economic assumptions" }
func (*settingsCmd) Usage() string {
	return `compound settings [-age <years>] [-retire <age>] [-income <weekly>] [-inflation <%>] [-property-growth <%>] [-currency <code>] [-pay <frequency>]

  Updates the settings given as flags and prints the settings in use.

`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.age, "age", 0, "Your current age.")
	f.Float64Var(&c.retire, "retire", 0, "The age you plan to retire at.")
	f.Float64Var(&c.income, "income", 0, "After-tax weekly income.")
	f.Float64Var(&c.inflation, "inflation", 0, "Annual inflation rate in %.")
	f.Float64Var(&c.propertyGrowth, "property-growth", 0, "Annual property growth rate in %. Defaults to the inflation.")
	f.StringVar(&c.currency, "currency", "", "Currency of the amounts, an ISO 4217 code.")
	f.StringVar(&c.pay, "pay", "", "Pay frequency: weekly, fortnightly, monthly or yearly.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now := time.Now()
	s, err := DecodeStore(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var usage error
	set := s.Settings
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "age":
			set.Age = c.age
		case "retire":
			set.RetirementAge = c.retire
		case "income":
			set.AfterTaxWeeklyIncome = c.income
		case "inflation":
			set.InflationRate = c.inflation
		case "property-growth":
			set.PropertyGrowthRate = &c.propertyGrowth
		case "currency":
			if !renderer.KnownCurrency(strings.ToUpper(c.currency)) {
				usage = fmt.Errorf("unknown currency %q", c.currency)
			}
			set.Currency = strings.ToUpper(c.currency)
		case "pay":
			freq, err := compound.ParseFrequency(c.pay)
			if err != nil {
				usage = err
			}
			set.PayFrequency = freq
		}
	})
	if usage != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", usage)
		return subcommands.ExitUsageError
	}
	if f.NFlag() == 0 {
		fmt.Fprintf(output, "%+v\n", s.Settings)
		return subcommands.ExitSuccess
	}
	set.UpdatedAt = compound.TimestampOf(now)
	s.Settings = set
	return save(s, now, "%+v", s.Settings)
}

type addItemCmd struct {
	recordFlags
	amount   float64
	freq     string
	category string
	parent   string
	sub      bool
	link     string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "adds or replaces a budget item" }
func (*addItemCmd) Usage() string {
	return `compound add-item -name <name> -amount <amount> [-freq <frequency>] [-category <category>] [-parent <id>] [-link <type>:<id>] [-id <id>]

  Adds a budget item. An item with children is the sum of its children, its
  own amount is ignored. -link ties the item to an investment, savings bucket,
  mortgage or shared housing expense, which then stops appearing as a linked
  item of its own.

Usage Examples:
$ compound add-item -id subs -name Subscriptions -category cost
$ compound add-item -name Netflix -amount 15 -freq monthly -category cost -parent subs

`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.Float64Var(&c.amount, "amount", 0, "Amount per period.")
	f.StringVar(&c.freq, "freq", "weekly", "Period of the amount: weekly, fortnightly, monthly or yearly.")
	f.StringVar(&c.category, "category", "necessity", "Category: necessity, cost or savings.")
	f.StringVar(&c.parent, "parent", "", "Id of the parent item.")
	f.BoolVar(&c.sub, "sub", false, "The item is a subscription.")
	f.StringVar(&c.link, "link", "", "Record the item stands for, as investment:<id>, savings_bucket:<id>, mortgage:<id> or housing:<id>.")
}

// parseLink parses a "<type>:<id>" link.
func parseLink(v string) (compound.LinkType, string, error) {
	if v == "" {
		return "", "", nil
	}
	t, id, ok := strings.Cut(v, ":")
	lt := compound.LinkType(t)
	if !ok || id == "" || !slices.Contains([]compound.LinkType{compound.LinkInvestment, compound.LinkSavingsBucket, compound.LinkMortgage, compound.LinkHousing}, lt) {
		return "", "", fmt.Errorf("invalid link %q, want <type>:<id>", v)
	}
	return lt, id, nil
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	freq, err := compound.ParseFrequency(c.freq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	category := compound.Category(strings.ToLower(c.category))
	if !slices.Contains(compound.Categories, category) {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", c.category)
		return subcommands.ExitUsageError
	}
	linkType, linkID, err := parseLink(c.link)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	now := time.Now()
	s, err := DecodeStore(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	at := compound.TimestampOf(now)
	item := compound.BudgetItem{
		ID:             c.recordID(),
		Name:           c.name,
		Amount:         c.amount,
		Frequency:      freq,
		Category:       category,
		IsSubscription: c.sub,
		ParentID:       c.parent,
		LinkedToID:     linkID,
		LinkedToType:   linkType,
		Notes:          c.notes,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
	if i := slices.IndexFunc(s.BudgetItems, func(b compound.BudgetItem) bool { return b.ID == item.ID }); i >= 0 {
		item.CreatedAt = s.BudgetItems[i].CreatedAt
	}
	s, err = s.WithBudgetItem(item)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot add %q: %v\n", c.name, err)
		return subcommands.ExitFailure
	}
	return save(s, now, "Saved budget item %q (%s).", item.Name, item.ID)
}

type removeItemCmd struct{}

func (*removeItemCmd) Name() string     { return "remove-item" }
func (*removeItemCmd) Synopsis() string { return "removes budget items" }
func (*removeItemCmd) Usage() string {
	return `compound remove-item <id>...

  Removes budget items. Their children become top-level items.

`
}

func (*removeItemCmd) SetFlags(f *flag.FlagSet) {}

func (*removeItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no item id")
		return subcommands.ExitUsageError
	}
	now := time.Now()
	s, err := DecodeStore(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		if !slices.ContainsFunc(s.BudgetItems, func(b compound.BudgetItem) bool { return b.ID == id }) {
			fmt.Fprintf(os.Stderr, "Error: %v: %q\n", compound.ErrUnknownItem, id)
			return subcommands.ExitFailure
		}
		s = s.WithoutBudgetItem(id)
	}
	return save(s, now, "Removed %d budget items.", f.NArg())
}

type addInvestmentCmd struct {
	recordFlags
	kind     string
	value    float64
	on       string
	weekly   float64
	expected float64
	fee      float64
}

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "adds or updates an investment account" }
func (*addInvestmentCmd) Usage() string {
	return `compound add-investment -name <name> -value <value> [-on <date>] [-weekly <contribution>] [-return <%>] [-fee <%>] [-id <id>]

  Records the value of an investment account on a date. Reports project the
  value from that date with the weekly contribution and the expected return.

`
}

func (c *addInvestmentCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.StringVar(&c.kind, "type", "etf", "Kind of account: etf, kiwisaver or other.")
	f.Float64Var(&c.value, "value", 0, "Value of the account.")
	f.StringVar(&c.on, "on", "0d", "Date the value was read.")
	f.Float64Var(&c.weekly, "weekly", 0, "Weekly contribution.")
	f.Float64Var(&c.expected, "return", 7, "Expected annual return in %.")
	f.Float64Var(&c.fee, "fee", 0, "Annual fees in %.")
}

func (c *addInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	now := time.Now()
	on, err := timestamp(c.on, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := DecodeStore(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	at := compound.TimestampOf(now)
	inv := compound.Investment{
		ID:                    c.recordID(),
		Name:                  c.name,
		Type:                  c.kind,
		CurrentValue:          c.value,
		CurrentValueUpdatedAt: on,
		WeeklyContribution:    c.weekly,
		ExpectedReturnRate:    c.expected,
		FeeRate:               c.fee,
		Notes:                 c.notes,
		CreatedAt:             at,
		UpdatedAt:             at,
	}
	if old, ok := s.Investment(inv.ID); ok {
		inv.CreatedAt = old.CreatedAt
	}
	return save(s.WithInvestment(inv), now, "Saved investment %q (%s).", inv.Name, inv.ID)
}

type addBucketCmd struct {
	recordFlags
	current  float64
	on       string
	target   float64
	by       string
	weekly   float64
	expected float64
}

func (*addBucketCmd) Name() string     { return "add-bucket" }
func (*addBucketCmd) Synopsis() string { return "adds or updates a savings bucket" }
func (*addBucketCmd) Usage() string {
	return `compound add-bucket -name <name> -target <amount> [-current <amount>] [-on <date>] [-weekly <contribution>] [-by <date>] [-id <id>]

  Records a savings bucket: money put aside toward a target.

`
}

func (c *addBucketCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.Float64Var(&c.current, "current", 0, "Amount in the bucket.")
	f.StringVar(&c.on, "on", "0d", "Date the amount was read.")
	f.Float64Var(&c.target, "target", 0, "Amount to reach.")
	f.StringVar(&c.by, "by", "", "Date to reach the target by.")
	f.Float64Var(&c.weekly, "weekly", 0, "Weekly contribution.")
	f.Float64Var(&c.expected, "return", 0, "Expected annual interest in %.")
}

func (c *addBucketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	now := time.Now()
	on, err := timestamp(c.on, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	by, err := timestamp(c.by, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := DecodeStore(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	at := compound.TimestampOf(now)
	b := compound.SavingsBucket{
		ID:                     c.recordID(),
		Name:                   c.name,
		TargetAmount:           c.target,
		CurrentAmount:          c.current,
		CurrentAmountUpdatedAt: on,
		WeeklyContribution:     c.weekly,
		ExpectedReturnRate:     c.expected,
		TargetDate:             by,
		Notes:                  c.notes,
		CreatedAt:              at,
		UpdatedAt:              at,
	}
	if old, ok := s.SavingsBucket(b.ID); ok {
		b.CreatedAt = old.CreatedAt
	}
	return save(s.WithSavingsBucket(b), now, "Saved savings bucket %q (%s).", b.Name, b.ID)
}

type addMortgageCmd struct {
	recordFlags
	principal float64
	on        string
	original  float64
	property  float64
	rate      float64
	weekly    float64
	extra     float64
	term      float64
}

func (*addMortgageCmd) Name() string     { return "add-mortgage" }
func (*addMortgageCmd) Synopsis() string { return "adds or updates a mortgage" }
func (*addMortgageCmd) Usage() string {
	return `compound add-mortgage -name <name> -principal <balance> -rate <%> -weekly <payment> [-on <date>] [-property <value>] [-extra <weekly>] [-id <id>]

  Records the balance of a mortgage on a date. Reports amortize it month by
  month from that date.

`
}

func (c *addMortgageCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.Float64Var(&c.principal, "principal", 0, "Balance of the loan.")
	f.StringVar(&c.on, "on", "0d", "Date the balance was read.")
	f.Float64Var(&c.original, "original", 0, "Amount originally borrowed. Defaults to the balance.")
	f.Float64Var(&c.property, "property", 0, "Value of the property.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in %.")
	f.Float64Var(&c.weekly, "weekly", 0, "Weekly payment.")
	f.Float64Var(&c.extra, "extra", 0, "Weekly extra payment.")
	f.Float64Var(&c.term, "term", 30, "Term of the loan in years.")
}

func (c *addMortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	now := time.Now()
	on, err := timestamp(c.on, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := DecodeStore(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	original := c.original
	if original == 0 {
		original = c.principal
	}
	at := compound.TimestampOf(now)
	m := compound.Mortgage{
		ID:                 c.recordID(),
		Name:               c.name,
		Principal:          c.principal,
		PrincipalUpdatedAt: on,
		OriginalPrincipal:  original,
		PropertyValue:      c.property,
		InterestRate:       c.rate,
		WeeklyPayment:      c.weekly,
		ExtraWeeklyPayment: c.extra,
		TermYears:          c.term,
		Notes:              c.notes,
		CreatedAt:          at,
		UpdatedAt:          at,
	}
	return save(s.WithMortgage(m), now, "Saved mortgage %q (%s).", m.Name, m.ID)
}

type addGoalCmd struct {
	recordFlags
	kind    string
	target  float64
	current float64
	by      string
	months  float64
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "adds or updates a goal" }
func (*addGoalCmd) Usage() string {
	return `compound add-goal -name <name> [-type <type>] [-target <amount>] [-current <amount>] [-by <date>] [-months <n>] [-id <id>]

  Records a financial goal. An emergency fund with -months targets that many
  months of necessities instead of -target.

Usage Examples:
$ compound add-goal -name "Rainy day" -type emergency_fund -months 3
$ compound add-goal -name Deposit -type time_specific -target 50000 -by +2y

`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.StringVar(&c.kind, "type", string(compound.WealthGoal), "Goal type: emergency_fund, wealth, time_specific or debt_free.")
	f.Float64Var(&c.target, "target", 0, "Amount to reach.")
	f.Float64Var(&c.current, "current", 0, "Amount already saved.")
	f.StringVar(&c.by, "by", "", "Date to reach the target by.")
	f.Float64Var(&c.months, "months", 0, "Months of necessities of an emergency fund.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	kind := compound.GoalType(c.kind)
	if !slices.Contains([]compound.GoalType{compound.EmergencyFund, compound.WealthGoal, compound.TimeSpecific, compound.DebtFree}, kind) {
		fmt.Fprintf(os.Stderr, "Error: unknown goal type %q\n", c.kind)
		return subcommands.ExitUsageError
	}
	now := time.Now()
	by, err := timestamp(c.by, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := DecodeStore(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	at := compound.TimestampOf(now)
	g := compound.Goal{
		ID:                     c.recordID(),
		Name:                   c.name,
		Type:                   kind,
		TargetAmount:           c.target,
		CurrentAmount:          c.current,
		CurrentAmountUpdatedAt: at,
		TargetDate:             by,
		MonthsOfExpenses:       c.months,
		Notes:                  c.notes,
		CreatedAt:              at,
		UpdatedAt:              at,
	}
	return save(s.WithGoal(g), now, "Saved goal %q (%s).", g.Name, g.ID)
}
