package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/compound"
	"github.com/etnz/compound/config"
	"github.com/google/subcommands"
)

func TestMain(m *testing.M) {
	// Keep the user's config and data out of the tests.
	home, err := os.MkdirTemp("", "compound-cmd")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	os.Unsetenv(config.EnvStore)
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

// useStore points the commands to a new store file and captures their output.
func useStore(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "store.json")
	prevStore, prevOutput := *storeFile, output
	*storeFile = name
	t.Cleanup(func() { *storeFile, output = prevStore, prevOutput })
	return name
}

// run executes the command line args and returns its status and output.
func run(t *testing.T, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var buf bytes.Buffer
	output = &buf
	top := flag.NewFlagSet("compound", flag.ContinueOnError)
	c := subcommands.NewCommander(top, "compound")
	Register(c)
	if err := top.Parse(args); err != nil {
		t.Fatalf("invalid command line %q: %v", args, err)
	}
	return c.Execute(context.Background()), buf.String()
}

// mustRun executes args and fails the test unless it succeeds.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	status, out := run(t, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("compound %s = %v, want success", strings.Join(args, " "), status)
	}
	return out
}

func TestAdjustments(t *testing.T) {
	a := adjustments{}
	for _, v := range []string{"savings_bucket:car=40", "investment:etf=0.5"} {
		if err := a.Set(v); err != nil {
			t.Fatalf("Set(%q) failed: %v", v, err)
		}
	}
	if got, want := a.String(), "investment:etf=0.5,savings_bucket:car=40"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	for _, v := range []string{"car", "=12", "car=lots"} {
		if err := a.Set(v); err == nil {
			t.Errorf("Set(%q) succeeded, want an error", v)
		}
	}
}

func TestParseLink(t *testing.T) {
	testCases := []struct {
		value    string
		wantType compound.LinkType
		wantID   string
		wantErr  bool
	}{
		{value: ""},
		{value: "investment:etf", wantType: compound.LinkInvestment, wantID: "etf"},
		{value: "savings_bucket:a:b", wantType: compound.LinkSavingsBucket, wantID: "a:b"},
		{value: "mortgage:", wantErr: true},
		{value: "car:1", wantErr: true},
		{value: "etf", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			lt, id, err := parseLink(tc.value)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseLink(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
			if lt != tc.wantType || id != tc.wantID {
				t.Errorf("parseLink(%q) = %q, %q, want %q, %q", tc.value, lt, id, tc.wantType, tc.wantID)
			}
		})
	}
}

func TestReportDate(t *testing.T) {
	r := reportFlags{on: "2030-1-1"}
	got, err := r.now()
	if err != nil {
		t.Fatalf("now() failed: %v", err)
	}
	if want := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("now() = %v, want %v", got, want)
	}

	r.on = "0d"
	if got, _ := r.now(); time.Since(got) > time.Minute {
		t.Errorf("now() of today = %v, want the current time", got)
	}

	r.on = "someday"
	if _, err := r.now(); err == nil {
		t.Errorf("now() of an invalid date succeeded, want an error")
	}

	if ts, err := timestamp("", time.Now()); err != nil || !ts.IsZero() {
		t.Errorf("timestamp(\"\") = %v, %v, want zero", ts, err)
	}
}

func TestPayFrequency(t *testing.T) {
	s := compound.NewStore(time.Now())
	testCases := []struct {
		name  string
		flag  string
		store compound.Frequency
		want  compound.Frequency
	}{
		{name: "flag", flag: "month", store: compound.Weekly, want: compound.Monthly},
		{name: "store", store: compound.Weekly, want: compound.Weekly},
		{name: "config", want: compound.Fortnightly},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s.Settings.PayFrequency = tc.store
			got, err := payFrequency(tc.flag, s)
			if err != nil {
				t.Fatalf("payFrequency() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("payFrequency() = %q, want %q", got, tc.want)
			}
		})
	}
	if _, err := payFrequency("hourly", s); err == nil {
		t.Errorf("payFrequency(hourly) succeeded, want an error")
	}
}

func TestReportOptions(t *testing.T) {
	useStore(t)
	s := compound.NewStore(time.Now())
	s.Settings.Currency = "eur"
	if got := reportOptions(s).Currency; got != "EUR" {
		t.Errorf("reportOptions() currency = %q, want the store's", got)
	}
	s.Settings.Currency = ""
	if got := reportOptions(s).Currency; got != "NZD" {
		t.Errorf("reportOptions() currency = %q, want the config's", got)
	}
	*currency = "AUD"
	defer func() { *currency = "" }()
	if got := reportOptions(s).Currency; got != "AUD" {
		t.Errorf("reportOptions() currency = %q, want the flag's", got)
	}
}

func TestRecords(t *testing.T) {
	name := useStore(t)

	mustRun(t, "settings", "-income", "1000", "-age", "30", "-retire", "35", "-pay", "weekly")
	mustRun(t, "add-item", "-id", "rent", "-name", "Rent", "-amount", "400")
	mustRun(t, "add-item", "-id", "subs", "-name", "Subscriptions", "-category", "cost")
	mustRun(t, "add-item", "-id", "netflix", "-name", "Netflix", "-amount", "15", "-freq", "monthly", "-category", "cost", "-parent", "subs")
	mustRun(t, "add-investment", "-id", "etf", "-name", "World ETF", "-value", "1000", "-weekly", "50")
	mustRun(t, "add-bucket", "-id", "car", "-name", "Car", "-target", "1000", "-weekly", "20")
	mustRun(t, "add-mortgage", "-id", "home", "-name", "Home", "-principal", "100000", "-rate", "5", "-weekly", "300", "-property", "400000")
	mustRun(t, "add-goal", "-id", "fund", "-name", "Rainy day", "-type", "emergency_fund", "-months", "3")

	s, err := compound.DecodeStoreFile(name)
	if err != nil {
		t.Fatalf("DecodeStoreFile() failed: %v", err)
	}
	if s.Settings.AfterTaxWeeklyIncome != 1000 || s.Settings.PayFrequency != compound.Weekly {
		t.Errorf("settings = %+v, want the income and pay frequency set", s.Settings)
	}
	if len(s.BudgetItems) != 3 || len(s.Investments) != 1 || len(s.SavingsBuckets) != 1 || len(s.Mortgages) != 1 || len(s.Goals) != 1 {
		t.Fatalf("store = %+v, want every record saved", s)
	}
	if m := s.Mortgages[0]; m.OriginalPrincipal != 100000 || m.PrincipalUpdatedAt.IsZero() {
		t.Errorf("mortgage = %+v, want the original principal and the update date set", m)
	}

	failures := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{[]string{"add-item", "-amount", "1"}, subcommands.ExitUsageError},
		{[]string{"add-item", "-name", "X", "-category", "luxury"}, subcommands.ExitUsageError},
		{[]string{"add-item", "-name", "X", "-freq", "hourly"}, subcommands.ExitUsageError},
		{[]string{"add-item", "-name", "X", "-link", "car:1"}, subcommands.ExitUsageError},
		{[]string{"add-item", "-id", "subs", "-name", "Loop", "-parent", "netflix"}, subcommands.ExitFailure},
		{[]string{"add-item", "-name", "X", "-parent", "nope"}, subcommands.ExitFailure},
		{[]string{"add-goal", "-name", "X", "-type", "lottery"}, subcommands.ExitUsageError},
		{[]string{"add-investment", "-name", "X", "-on", "someday"}, subcommands.ExitUsageError},
		{[]string{"settings", "-currency", "ZZZ"}, subcommands.ExitUsageError},
		{[]string{"remove-item"}, subcommands.ExitUsageError},
		{[]string{"remove-item", "nope"}, subcommands.ExitFailure},
	}
	for _, tc := range failures {
		if status, _ := run(t, tc.args...); status != tc.want {
			t.Errorf("compound %s = %v, want %v", strings.Join(tc.args, " "), status, tc.want)
		}
	}

	mustRun(t, "remove-item", "subs")
	s, _ = compound.DecodeStoreFile(name)
	if len(s.BudgetItems) != 2 || s.BudgetItems[1].ParentID != "" {
		t.Errorf("budget after remove-item = %+v, want netflix at the top", s.BudgetItems)
	}
}

func TestReports(t *testing.T) {
	useStore(t)
	mustRun(t, "settings", "-income", "1000", "-age", "30", "-retire", "35")
	mustRun(t, "add-item", "-id", "rent", "-name", "Rent", "-amount", "400")
	mustRun(t, "add-investment", "-id", "etf", "-name", "World ETF", "-value", "1000", "-weekly", "50")
	mustRun(t, "add-mortgage", "-id", "home", "-name", "Home", "-principal", "100000", "-rate", "5", "-weekly", "300", "-property", "400000")
	mustRun(t, "add-goal", "-name", "Rainy day", "-type", "emergency_fund", "-months", "3")

	testCases := []struct {
		args  []string
		wants []string
	}{
		{[]string{"overview", "-html"}, []string{"<h1>Overview</h1>", "Weekly Cash Flow", "0 of 1 goals reached."}},
		{[]string{"budget", "-html"}, []string{"<h1>Budget</h1>", "Rent", "World ETF", "Home"}},
		{[]string{"wealth", "-html", "-d", "2030-1-1"}, []string{"Wealth on 2030-01-01", "World ETF", "Home"}},
		{[]string{"timeline", "-html"}, []string{"Wealth Timeline"}},
		{[]string{"mortgage", "-html", "-id", "home", "-extra", "50", "-schedule", "2"}, []string{"<h1>Home</h1>", "Extra Payment", "Schedule"}},
		{[]string{"goals", "-html"}, []string{"Rainy day"}},
	}
	for _, tc := range testCases {
		t.Run(tc.args[0], func(t *testing.T) {
			out := mustRun(t, tc.args...)
			for _, want := range tc.wants {
				if !strings.Contains(out, want) {
					t.Errorf("compound %s does not contain %q:\n%s", strings.Join(tc.args, " "), want, out)
				}
			}
		})
	}

	for _, args := range [][]string{
		{"mortgage", "-id", "nope"},
		{"housing"},
		{"budget", "-d", "someday"},
	} {
		if status, _ := run(t, args...); status != subcommands.ExitFailure {
			t.Errorf("compound %s = %v, want a failure", strings.Join(args, " "), status)
		}
	}
	if status, _ := run(t, "mortgage", "-extra", "-1"); status != subcommands.ExitUsageError {
		t.Errorf("compound mortgage -extra -1 = %v, want a usage error", status)
	}
	if out := mustRun(t, "overview"); !strings.Contains(out, "Overview") {
		t.Errorf("compound overview does not print the overview:\n%s", out)
	}
}

func TestPayday(t *testing.T) {
	name := useStore(t)
	mustRun(t, "add-investment", "-id", "etf", "-name", "World ETF", "-value", "1000", "-weekly", "50")
	mustRun(t, "add-bucket", "-id", "car", "-name", "Car", "-target", "1000", "-weekly", "20")

	out := mustRun(t, "payday", "-freq", "weekly", "-html")
	if !strings.Contains(out, "World ETF") || !strings.Contains(out, "Car") {
		t.Errorf("compound payday does not list the savings:\n%s", out)
	}
	s, _ := compound.DecodeStoreFile(name)
	if b, _ := s.SavingsBucket("car"); b.CurrentAmount != 0 {
		t.Errorf("payday without -apply changed the bucket to %v", b.CurrentAmount)
	}

	mustRun(t, "payday", "-freq", "fortnightly", "-set", "savings_bucket:car=25", "-apply", "-html")
	s, _ = compound.DecodeStoreFile(name)
	if b, _ := s.SavingsBucket("car"); b.CurrentAmount != 25 {
		t.Errorf("bucket after payday = %v, want 25", b.CurrentAmount)
	}
	if inv, _ := s.Investment("etf"); inv.CurrentValue != 1100 {
		t.Errorf("investment after payday = %v, want 1100", inv.CurrentValue)
	}

	if status, _ := run(t, "payday", "-freq", "hourly"); status != subcommands.ExitUsageError {
		t.Errorf("compound payday -freq hourly = %v, want a usage error", status)
	}
}

func TestExportImport(t *testing.T) {
	useStore(t)
	mustRun(t, "add-item", "-id", "rent", "-name", "Rent", "-amount", "400")

	exported := filepath.Join(t.TempDir(), "export.json")
	mustRun(t, "export", exported)
	if out := mustRun(t, "export"); !strings.Contains(out, `"name": "Rent"`) {
		t.Errorf("compound export does not print the store:\n%s", out)
	}

	other := useStore(t)
	mustRun(t, "import", exported)
	s, err := compound.DecodeStoreFile(other)
	if err != nil {
		t.Fatalf("DecodeStoreFile() failed: %v", err)
	}
	if len(s.BudgetItems) != 1 || s.BudgetItems[0].Name != "Rent" {
		t.Errorf("imported items = %+v, want Rent", s.BudgetItems)
	}

	broken := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(broken, []byte(`{"data": {"budgetItems": {}}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if status, _ := run(t, "import", broken); status != subcommands.ExitFailure {
		t.Errorf("compound import of an invalid file = %v, want a failure", status)
	}
	if s, _ := compound.DecodeStoreFile(other); len(s.BudgetItems) != 1 {
		t.Errorf("invalid import changed the store: %+v", s.BudgetItems)
	}
	if status, _ := run(t, "import"); status != subcommands.ExitUsageError {
		t.Errorf("compound import without file = %v, want a usage error", status)
	}
}

func TestTopicAndConfig(t *testing.T) {
	useStore(t)
	mustRun(t, "topic", "budget")
	if status, _ := run(t, "topic", "nope"); status != subcommands.ExitFailure {
		t.Errorf("compound topic nope = %v, want a failure", status)
	}
	if out := mustRun(t, "config"); !strings.Contains(out, "[display]") || !strings.Contains(out, StorePath()) {
		t.Errorf("compound config does not print the configuration:\n%s", out)
	}
}

func TestCompletion(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("compound", flag.ContinueOnError), "compound")
	Register(c)
	root := Completion(c)

	if _, ok := root.Flags["store"]; !ok {
		t.Errorf("Completion() does not complete -store")
	}
	payday, ok := root.Sub["payday"]
	if !ok {
		t.Fatalf("Completion() does not complete payday")
	}
	for _, f := range []string{"freq", "set", "apply", "d", "html"} {
		if _, ok := payday.Flags[f]; !ok {
			t.Errorf("Completion() does not complete payday -%s", f)
		}
	}
	if root.Sub["topic"].Args == nil {
		t.Errorf("Completion() does not complete topics")
	}
}
