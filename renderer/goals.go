package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/compound"
	md "github.com/nao1215/markdown"
)

var goalTypes = map[compound.GoalType]string{
	compound.EmergencyFund: "Emergency fund",
	compound.WealthGoal:    "Wealth",
	compound.TimeSpecific:  "By a date",
	compound.DebtFree:      "Debt free",
}

// GoalsMarkdown renders the progress of goals and savings buckets.
func GoalsMarkdown(goals []compound.GoalStatus, buckets []compound.BucketStatus, opts Options) string {
	var b bytes.Buffer
	doc := md.NewMarkdown(&b)
	doc.H1("Goals")
	if len(goals) == 0 && len(buckets) == 0 {
		doc.PlainText("No goals yet.")
		return doc.String()
	}

	if len(goals) > 0 {
		var rows [][]string
		for _, s := range goals {
			deadline, weekly := "", ""
			if s.HasDeadline {
				deadline = weeks(s.WeeksRemaining)
				weekly = opts.money(s.WeeklyRequired)
			}
			name := s.Goal.Name
			if s.Reached {
				name += " ✓"
			}
			rows = append(rows, []string{
				name,
				goalTypes[s.Goal.Type],
				opts.money(s.Current),
				opts.money(s.Target),
				Ratio(s.Progress).String(),
				deadline,
				weekly,
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Goal", "Type", "Current", "Target", "Progress", "Deadline in", "Weekly needed"},
			Rows:   rows,
		})
	}

	out := bytes.NewBufferString(doc.String())
	ConditionalBlock(out, func(w io.Writer) bool {
		sub := md.NewMarkdown(w)
		var rows [][]string
		for _, s := range buckets {
			if s.Bucket.TargetAmount <= 0 {
				continue
			}
			weekly := ""
			if !s.Bucket.TargetDate.IsZero() {
				weekly = opts.money(s.WeeklyRequired)
			}
			rows = append(rows, []string{
				s.Bucket.Name,
				opts.money(s.Snapshot.ProjectedValue),
				opts.money(s.Bucket.TargetAmount),
				Ratio(s.Progress).String(),
				weeks(s.WeeksToTarget),
				weekly,
			})
		}
		if len(rows) == 0 {
			return false
		}
		sub.LF()
		sub.H2("Savings Buckets")
		sub.Table(md.TableSet{
			Header: []string{"Bucket", "Today", "Target", "Progress", "Target in", "Weekly needed"},
			Rows:   rows,
		})
		return sub.Build() == nil
	})
	return out.String()
}
