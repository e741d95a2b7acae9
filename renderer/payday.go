package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/compound"
	"github.com/etnz/compound/date"
	md "github.com/nao1215/markdown"
)

// Payday is the allocation of one pay period's savings.
type Payday struct {
	Date      date.Date
	Frequency compound.Frequency
	Lines     []compound.PaydayLine
	Balances  map[string]float64 // new balances by record id
	Applied   bool
}

// NewPayday plans the savings of one pay period of s and the balances they lead to.
func NewPayday(s compound.Store, freq compound.Frequency, adjustments map[string]float64, now time.Time) (*Payday, error) {
	lines, err := compound.PlanPayday(s, freq)
	if err != nil {
		return nil, err
	}
	return &Payday{
		Date:      date.Of(now),
		Frequency: freq,
		Lines:     lines,
		Balances:  compound.PaydayBalances(s, lines, adjustments, now),
	}, nil
}

// PaydayMarkdown renders a Payday.
func PaydayMarkdown(p *Payday, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Payday on %s", p.Date))

	if len(p.Lines) == 0 {
		doc.PlainText("No savings in the budget.")
		return doc.String()
	}

	var total float64
	rows := make([][]string, 0, len(p.Lines)+1)
	for _, l := range p.Lines {
		balance := ""
		if b, ok := p.Balances[l.LinkedToID]; ok && l.LinkedToID != "" {
			balance = opts.money(b)
		}
		rows = append(rows, []string{l.Name, opts.money(l.WeeklyAmount), opts.money(l.PeriodAmount), balance})
		total += l.PeriodAmount
	}
	rows = append(rows, []string{"**Total**", "", opts.money(total), ""})
	doc.Table(md.TableSet{
		Header: []string{"Savings", "Weekly", fmt.Sprintf("This pay (%s)", p.Frequency), "New balance"},
		Rows:   rows,
	})
	if p.Applied {
		doc.PlainText("New balances recorded.")
	}
	return doc.String()
}
