package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/compound"
	md "github.com/nao1215/markdown"
)

var categoryTitles = map[compound.Category]string{
	compound.Necessity: "Necessities",
	compound.Cost:      "Costs",
	compound.Savings:   "Savings",
}

// BudgetMarkdown renders the budget tree, one section per category of the
// top-level items, followed by the effective totals.
//
// Auto-calculated parents show the sum of their children; children are
// listed under their parent whatever their own category.
func BudgetMarkdown(tree *compound.BudgetTree, weeklyIncome float64, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Budget")

	for _, c := range compound.Categories {
		var rows [][]string
		for _, root := range tree.Roots() {
			if root.Category == c {
				rows = budgetRows(rows, tree, root, 0, opts)
			}
		}
		if len(rows) == 0 {
			continue
		}
		doc.H2(categoryTitles[c])
		doc.Table(md.TableSet{
			Header: []string{"Item", "Weekly", "Monthly", "Yearly"},
			Rows:   rows,
		})
	}

	totals := tree.WeeklyByCategory()
	rows := [][]string{amountRow("Income", weeklyIncome, opts)}
	for _, c := range compound.Categories {
		rows = append(rows, amountRow(categoryTitles[c], totals.Get(c), opts))
	}
	rows = append(rows, amountRow("**Uncommitted**", compound.UncommittedIncome(weeklyIncome, totals), opts))

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"", "Weekly", "Monthly", "Yearly"},
		Rows:   rows,
	})
	return doc.String()
}

// budgetRows appends the row of item and then the rows of its descendants.
func budgetRows(rows [][]string, tree *compound.BudgetTree, item compound.BudgetItem, depth int, opts Options) [][]string {
	name := item.Name
	if depth > 0 {
		// non-breaking spaces keep the indentation in tables
		name = strings.Repeat("\u00A0\u00A0", depth-1) + "└ " + name
	}
	switch {
	case tree.IsAuto(item.ID):
		name += " *(auto)*"
	case item.Virtual:
		name += " *(linked)*"
	}
	rows = append(rows, amountRow(name, tree.EffectiveWeekly(item.ID), opts))
	for _, child := range tree.Children(item.ID) {
		rows = budgetRows(rows, tree, child, depth+1, opts)
	}
	return rows
}

func amountRow(label string, weekly float64, opts Options) []string {
	return []string{
		label,
		opts.money(weekly),
		opts.money(compound.FromWeekly(weekly, compound.Monthly)),
		opts.money(compound.FromWeekly(weekly, compound.Yearly)),
	}
}
