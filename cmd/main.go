// Package cmd implements the commands of the compound command line.
package cmd

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/etnz/compound"
	"github.com/etnz/compound/config"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&overviewCmd{}, "reports")
	c.Register(&budgetCmd{}, "reports")
	c.Register(&wealthCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")
	c.Register(&mortgageCmd{}, "reports")
	c.Register(&goalsCmd{}, "reports")
	c.Register(&housingCmd{}, "reports")

	c.Register(&paydayCmd{}, "records")
	c.Register(&settingsCmd{}, "records")
	c.Register(&addItemCmd{}, "records")
	c.Register(&removeItemCmd{}, "records")
	c.Register(&addInvestmentCmd{}, "records")
	c.Register(&addBucketCmd{}, "records")
	c.Register(&addMortgageCmd{}, "records")
	c.Register(&addGoalCmd{}, "records")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&configCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

var storeFile = flag.String("store", "", "Path to the store file. Defaults to $"+config.EnvStore+", then the config file.")
var currency = flag.String("currency", "", "Currency of the reports, an ISO 4217 code. Defaults to the store's currency.")

// output receives everything the commands print.
var output io.Writer = os.Stdout

// loadConfig reads the config file once. A broken file falls back to the defaults.
var loadConfig = sync.OnceValue(func() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config-error path=%q err=%v, using defaults", config.Path(), err)
		return config.DefaultConfig()
	}
	return cfg
})

// StorePath returns the path of the store file in use.
func StorePath() string {
	if *storeFile != "" {
		return *storeFile
	}
	return config.StorePath(loadConfig())
}

// DecodeStore is the central function to open the user's store.
// A missing file is an empty store created now.
func DecodeStore(now time.Time) (compound.Store, error) {
	s, err := compound.DecodeStoreFile(StorePath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("store-not-found name=%q, starting from an empty store", StorePath())
		return compound.NewStore(now), nil
	}
	return s, err
}

// EncodeStore saves s into the store file.
func EncodeStore(s compound.Store, now time.Time) error {
	return compound.EncodeStoreFile(StorePath(), s, now)
}

// reportOptions returns the display options for s: the -currency flag wins
// over the store's currency, which wins over the config file.
func reportOptions(s compound.Store) renderer.Options {
	cfg := loadConfig()
	cur := cfg.Display.Currency
	if s.Settings.Currency != "" {
		cur = s.Settings.Currency
	}
	if *currency != "" {
		cur = *currency
	}
	cur = strings.ToUpper(cur)
	if !renderer.KnownCurrency(cur) {
		log.Printf("unknown-currency code=%q", cur)
	}
	return renderer.Options{Currency: cur, ShowCents: cfg.Display.ShowCents}
}

// payFrequency returns the pay frequency to use: flag, then store, then config.
func payFrequency(flagValue string, s compound.Store) (compound.Frequency, error) {
	switch {
	case flagValue != "":
		return compound.ParseFrequency(flagValue)
	case s.Settings.PayFrequency != "":
		return s.Settings.PayFrequency, nil
	default:
		return compound.ParseFrequency(loadConfig().Display.PayFrequency)
	}
}
