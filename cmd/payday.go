package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/compound"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

// adjustments is a repeatable flag of "<item id>=<amount>" pairs.
type adjustments map[string]float64

func (a adjustments) String() string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	pairs := make([]string, 0, len(a))
	for _, id := range ids {
		pairs = append(pairs, id+"="+strconv.FormatFloat(a[id], 'f', -1, 64))
	}
	return strings.Join(pairs, ",")
}

func (a adjustments) Set(v string) error {
	id, amount, ok := strings.Cut(v, "=")
	if !ok || id == "" {
		return fmt.Errorf("want <item id>=<amount>, got %q", v)
	}
	x, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("invalid amount for %q: %w", id, err)
	}
	a[id] = x
	return nil
}

type paydayCmd struct {
	reportFlags
	freq   string
	apply  bool
	adjust adjustments
}

func (*paydayCmd) Name() string     { return "payday" }
func (*paydayCmd) Synopsis() string { return "allocates one pay to the savings of the budget" }
func (*paydayCmd) Usage() string {
	return `compound payday [-freq <frequency>] [-set <item id>=<amount>]... [-apply] [-d <date>] [-html]

  Lists the savings items of the budget with their amount for one pay, and
  the balance every savings bucket and investment reaches once it is paid in.
  With -apply, the new balances are recorded in the store.

Usage Examples:
# Put only 100 in the holiday bucket this time, and record the result.
$ compound payday -set savings_bucket:holiday=100 -apply

`
}

func (c *paydayCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.SetFlags(f)
	c.adjust = adjustments{}
	f.StringVar(&c.freq, "freq", "", "Pay frequency. Defaults to the store's, then the config file's.")
	f.BoolVar(&c.apply, "apply", false, "Record the new balances in the store.")
	f.Var(c.adjust, "set", "Amount to pay into an item instead of its budget, as <item id>=<amount>. Repeatable.")
}

func (c *paydayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, now, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	freq, err := payFrequency(c.freq, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := renderer.NewPayday(s, freq, c.adjust, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid budget: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.apply && len(p.Lines) > 0 {
		s = compound.ApplyPayday(s, p.Lines, c.adjust, now)
		if err := EncodeStore(s, now); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		p.Applied = true
	}
	return exit(c.print(renderer.PaydayMarkdown(p, reportOptions(s))))
}
