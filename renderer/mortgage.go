package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/compound"
	"github.com/etnz/compound/date"
	md "github.com/nao1215/markdown"
)

// MortgageReport is the payoff plan of a mortgage from its balance today.
type MortgageReport struct {
	Mortgage compound.Mortgage // balance projected to today
	Snapshot compound.MortgageSnapshot
	Payoff   compound.MortgagePayoff
	Impact   *compound.ExtraPaymentImpact // nil without extra payment to evaluate
	Schedule []compound.AmortizationRow
}

// NewMortgageReport projects m to now and amortizes it from there.
// A positive extra evaluates paying that much more every week, and
// scheduleMonths limits the schedule (0 for none).
func NewMortgageReport(m compound.Mortgage, now time.Time, extra float64, scheduleMonths int) *MortgageReport {
	r := &MortgageReport{Snapshot: compound.ProjectCurrentMortgageBalance(m, now)}
	m.Principal = r.Snapshot.ProjectedBalance
	m.PrincipalUpdatedAt = compound.TimestampOf(now)
	r.Mortgage = m

	on := date.Of(now)
	r.Payoff = compound.CalculateMortgagePayoff(m, on)
	if extra > 0 {
		impact := compound.MortgageExtraPaymentImpact(m, extra, on)
		r.Impact = &impact
	}
	if scheduleMonths > 0 {
		r.Schedule = compound.AmortizationSchedule(m, on, scheduleMonths)
	}
	return r
}

// MortgageMarkdown renders a MortgageReport.
func MortgageMarkdown(r *MortgageReport, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	m := r.Mortgage
	doc.H1(m.Name)

	payoffDate := r.Payoff.PayoffDate.String()
	if r.Payoff.Unpayable {
		payoffDate = "never"
	}
	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{"Balance today", opts.money(m.Principal)},
			{"Interest rate", Percent(m.InterestRate).String()},
			{"Monthly payment", opts.money(m.MonthlyPayment())},
			{"Equity", opts.money(m.Equity(m.Principal))},
			{"Paid off in", months(r.Payoff.MonthsRemaining)},
			{"Paid off on", payoffDate},
			{"Total interest", opts.money(r.Payoff.TotalInterest)},
			{"Total paid", opts.money(r.Payoff.TotalPaid)},
		},
	})
	if r.Payoff.Unpayable {
		doc.PlainText(fmt.Sprintf("**The payments do not cover the interest of %s a month: the balance grows forever.**",
			opts.money(m.Principal*m.MonthlyRate())))
	} else if r.Payoff.RemainingBalance > 0 {
		doc.PlainText(fmt.Sprintf("After %d years, %s remain to be paid.", compound.MaxAmortizationMonths/12, opts.money(r.Payoff.RemainingBalance)))
	}

	if i := r.Impact; i != nil {
		extra := i.WithExtra.MonthsRemaining
		doc.H2("Extra Payment")
		doc.Table(md.TableSet{
			Header: []string{"", "Current", "With extra"},
			Rows: [][]string{
				{"Paid off in", months(i.Baseline.MonthsRemaining), months(extra)},
				{"Total interest", opts.money(i.Baseline.TotalInterest), opts.money(i.WithExtra.TotalInterest)},
			},
		})
		doc.PlainText(fmt.Sprintf("Saves %s and %s of interest.", savedMonths(i.MonthsSaved), opts.money(i.InterestSaved)))
	}

	if len(r.Schedule) > 0 {
		doc.H2("Schedule")
		rows := make([][]string, 0, len(r.Schedule))
		for _, row := range r.Schedule {
			rows = append(rows, []string{
				row.Date.String(),
				opts.money(row.Payment),
				opts.money(row.Interest),
				opts.money(row.Principal),
				opts.money(row.Balance),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Payment", "Interest", "Principal", "Balance"},
			Rows:   rows,
		})
	}
	return doc.String()
}

func savedMonths(n int) string {
	switch {
	case n >= compound.UnboundedMonths:
		return "an endless loan"
	case n <= -compound.UnboundedMonths:
		return "nothing"
	case n < 0:
		return fmt.Sprintf("-%s", months(-n))
	}
	return months(n)
}
