package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/compound"
	md "github.com/nao1215/markdown"
)

// TimelineMarkdown renders the yearly wealth projection, in today's money.
func TimelineMarkdown(points []compound.WealthPoint, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Wealth Timeline")
	doc.PlainText("All amounts in today's money.")

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			strconv.Itoa(p.Age),
			opts.money(p.Investments),
			opts.money(p.Property),
			opts.money(p.Debt),
			opts.money(p.NetWealth),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Age", "Investments", "Property", "Mortgages", "Net wealth"},
		Rows:   rows,
	})
	return doc.String()
}
