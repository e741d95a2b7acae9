package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/compound"
	md "github.com/nao1215/markdown"
)

// HousingMarkdown renders how shared housing costs are split, in weekly and monthly amounts.
func HousingMarkdown(a compound.HousingAllocation, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Shared Housing")
	doc.PlainText(fmt.Sprintf("Split by income: you pay %s, your partner %s.", Ratio(a.YourRatio), Ratio(a.PartnerRatio)))

	rows := make([][]string, 0, len(a.Lines)+1)
	for _, l := range a.Lines {
		rows = append(rows, []string{
			l.Expense.Name,
			opts.money(l.Weekly),
			opts.money(l.YourShare),
			opts.money(l.PartnerShare),
		})
	}
	rows = append(rows, []string{
		"**Total**",
		opts.money(a.TotalWeekly),
		opts.money(a.YourShare),
		opts.money(a.PartnerShare),
	})
	doc.Table(md.TableSet{
		Header: []string{"Expense", "Weekly", "You", "Partner"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Monthly: %s for you, %s for your partner.",
		opts.money(compound.FromWeekly(a.YourShare, compound.Monthly)),
		opts.money(compound.FromWeekly(a.PartnerShare, compound.Monthly))))
	return doc.String()
}
