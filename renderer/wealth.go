package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/compound"
	"github.com/etnz/compound/date"
	md "github.com/nao1215/markdown"
)

// projectionYears is the horizon of the investment projections of the wealth report.
const projectionYears = 10

// InvestmentRow is an investment valued today and in ten years.
type InvestmentRow struct {
	Investment compound.Investment
	Snapshot   compound.ValueSnapshot
	Projection compound.Projection
}

// MortgageRow is a mortgage with its balance projected to today.
type MortgageRow struct {
	Mortgage compound.Mortgage
	Snapshot compound.MortgageSnapshot
}

// Wealth is the state of every account of a store, projected to Date from
// the last recorded values.
type Wealth struct {
	Date          date.Date
	Investments   []InvestmentRow
	Buckets       []compound.BucketStatus
	Mortgages     []MortgageRow
	RetirementAge float64
	AtRetirement  compound.WealthAtAge
}

// NewWealth projects every investment, bucket and mortgage of s to now.
func NewWealth(s compound.Store, now time.Time) *Wealth {
	w := &Wealth{
		Date:          date.Of(now),
		RetirementAge: s.Settings.RetirementAge,
	}
	for _, inv := range s.Investments {
		w.Investments = append(w.Investments, InvestmentRow{
			Investment: inv,
			Snapshot:   compound.ProjectCurrentInvestmentValue(inv, now),
			Projection: compound.ProjectInvestment(inv, projectionYears, s.Settings.InflationRate),
		})
	}
	for _, b := range s.SavingsBuckets {
		w.Buckets = append(w.Buckets, compound.BucketProgress(b, now))
	}
	for _, m := range s.Mortgages {
		w.Mortgages = append(w.Mortgages, MortgageRow{Mortgage: m, Snapshot: compound.ProjectCurrentMortgageBalance(m, now)})
	}
	current := s.AsOf(now)
	w.AtRetirement = compound.ProjectWealthAtAge(s.Settings.Age, s.Settings.RetirementAge, current.Investments, current.Mortgages, s.Settings.InflationRate)
	return w
}

// updated describes how old a projected value is.
func updated(weeks int) string {
	switch weeks {
	case 0:
		return "up to date"
	case 1:
		return "1 week ago"
	}
	return fmt.Sprintf("%d weeks ago", weeks)
}

// WealthMarkdown renders the Wealth report.
func WealthMarkdown(w *Wealth, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Wealth on %s", w.Date))

	if len(w.Investments) > 0 {
		doc.H2("Investments")
		var rows [][]string
		for _, r := range w.Investments {
			rows = append(rows, []string{
				r.Investment.Name,
				opts.money(r.Investment.CurrentValue),
				updated(r.Snapshot.WeeksSinceUpdate),
				opts.money(r.Snapshot.ProjectedValue),
				M(r.Snapshot.GrowthSinceUpdate, opts.Currency).SignedString(),
				Percent(r.Investment.NetReturnRate() * 100).String(),
				opts.money(r.Projection.Real),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Investment", "Recorded", "Updated", "Today", "Growth", "Net return", fmt.Sprintf("In %d years (real)", projectionYears)},
			Rows:   rows,
		})
	}

	if len(w.Buckets) > 0 {
		doc.H2("Savings Buckets")
		var rows [][]string
		for _, b := range w.Buckets {
			rows = append(rows, []string{
				b.Bucket.Name,
				opts.money(b.Snapshot.ProjectedValue),
				opts.money(b.Bucket.TargetAmount),
				Ratio(b.Progress).String(),
				weeks(b.WeeksToTarget),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Bucket", "Today", "Target", "Progress", "Target in"},
			Rows:   rows,
		})
	}

	if len(w.Mortgages) > 0 {
		doc.H2("Mortgages")
		var rows [][]string
		for _, r := range w.Mortgages {
			rows = append(rows, []string{
				r.Mortgage.Name,
				opts.money(r.Mortgage.Principal),
				updated(r.Snapshot.WeeksSinceUpdate),
				opts.money(r.Snapshot.ProjectedBalance),
				opts.money(r.Snapshot.PrincipalPaidSinceUpdate),
				opts.money(r.Mortgage.Equity(r.Snapshot.ProjectedBalance)),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Mortgage", "Recorded", "Updated", "Today", "Principal paid", "Equity"},
			Rows:   rows,
		})
	}

	doc.H2(fmt.Sprintf("At %g", w.RetirementAge))
	doc.Table(md.TableSet{
		Header: []string{"", "Nominal", "Today's money"},
		Rows: [][]string{
			{"Investments", opts.money(w.AtRetirement.Nominal), opts.money(w.AtRetirement.Real)},
			{"Mortgages", opts.money(w.AtRetirement.MortgageRemaining), ""},
			{"**Net wealth**", opts.money(w.AtRetirement.NetWealth), opts.money(w.AtRetirement.NetWealthReal)},
		},
	})
	return doc.String()
}
