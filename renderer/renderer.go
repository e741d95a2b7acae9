// Package renderer turns the results of the calculation core into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"text/template"

	"github.com/etnz/compound"
)

//go:embed *.md
var templates embed.FS

// Options holds the display preferences shared by all reports.
type Options struct {
	Currency  string
	ShowCents bool
}

// money formats v in the report's currency.
func (o Options) money(v float64) string {
	m := M(v, o.Currency)
	if o.ShowCents {
		return m.String()
	}
	return m.Whole()
}

// M returns v as Money in the report's currency.
func (o Options) M(v float64) Money { return M(v, o.Currency) }

// RenderOverview renders the Overview struct to a markdown string.
func RenderOverview(o *Overview) string {
	partials := map[string]string{
		"overview_title":    "overview_title.md",
		"overview_cashflow": "overview_cashflow.md",
		"overview_wealth":   "overview_wealth.md",
		"overview_goals":    "overview_goals.md",
	}
	// Nothing to say about goals until there are some.
	if o.Goals == 0 {
		partials["overview_goals"] = ""
	}
	return renderTemplate("overview", "overview.md", partials, o)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// weeks formats a number of weeks, rounded up.
func weeks(w float64) string {
	switch {
	case math.IsInf(w, 1) || math.IsNaN(w):
		return "never"
	case w <= 0:
		return "reached"
	case w < 1:
		return "1 week"
	}
	n := int(math.Ceil(w))
	if n < 104 {
		return fmt.Sprintf("%d weeks", n)
	}
	return fmt.Sprintf("%.1f years", float64(n)/compound.WeeksPerYear)
}

// months formats a number of months as years and months.
func months(n int) string {
	if n >= compound.UnboundedMonths {
		return "never"
	}
	y, m := n/12, n%12
	switch {
	case y == 0:
		return fmt.Sprintf("%d months", m)
	case m == 0:
		return fmt.Sprintf("%d years", y)
	}
	return fmt.Sprintf("%d years %d months", y, m)
}
