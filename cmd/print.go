package cmd

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/compound"
	"github.com/etnz/compound/date"
	"github.com/etnz/compound/renderer"
)

// printMarkdown renders md for the terminal, in the style of the config file.
// The raw markdown is printed if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		styleOption(loadConfig().Display.Style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Printf("markdown-renderer-error err=%v", err)
		fmt.Fprintln(output, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("markdown-render-error err=%v", err)
		fmt.Fprintln(output, md)
		return
	}
	fmt.Fprint(output, out)
}

func styleOption(style string) glamour.TermRendererOption {
	if style == "" || style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}

// reportFlags are the flags shared by the reporting commands.
type reportFlags struct {
	on   string
	html bool
}

func (r *reportFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.on, "d", "0d", "Date of the report, as 2025-7-1, -2w or +1y. Stored values are projected to that date.")
	f.BoolVar(&r.html, "html", false, "Print the report as HTML instead of the terminal rendering.")
}

// now returns the time the report is computed at. Today is the current time,
// any other day its midnight UTC.
func (r *reportFlags) now() (time.Time, error) {
	d, err := date.Parse(r.on)
	if err != nil {
		return time.Time{}, err
	}
	if d.IsToday() {
		return time.Now(), nil
	}
	return d.Time(), nil
}

// open decodes the store and returns it with the report time.
func (r *reportFlags) open() (compound.Store, time.Time, error) {
	now, err := r.now()
	if err != nil {
		return compound.Store{}, now, err
	}
	s, err := DecodeStore(now)
	return s, now, err
}

// print prints md in the requested format.
func (r *reportFlags) print(md string) error {
	if !r.html {
		printMarkdown(md)
		return nil
	}
	h, err := renderer.HTML(md)
	if err != nil {
		return err
	}
	fmt.Fprint(output, h)
	return nil
}
