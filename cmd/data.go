package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/etnz/compound"
	"github.com/etnz/compound/config"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replaces the store with an export file" }
func (*importCmd) Usage() string {
	return `compound import <file>

  Replaces all the records of the store with the ones of an export file, as
  written by 'compound export' or the web application. Use - to read the
  standard input. Nothing is changed if the file is not a valid export.

`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes exactly one file")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	s, err := compound.ImportData(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot import %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	log.Printf("import name=%q items=%d investments=%d mortgages=%d", name, len(s.BudgetItems), len(s.Investments), len(s.Mortgages))
	return save(s, time.Now(), "Imported %q.", name)
}

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "writes the store in the export format" }
func (*exportCmd) Usage() string {
	return `compound export [<file>]

  Writes all the records of the store to a file, or to the standard output.
  The file can be imported back, here or in the web application.

`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (*exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: export takes at most one file")
		return subcommands.ExitUsageError
	}
	now := time.Now()
	s, err := DecodeStore(now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	w := output
	if f.NArg() == 1 && f.Arg(0) != "-" {
		file, err := os.Create(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := compound.ExportData(w, s, now); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type configCmd struct {
	init bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "shows the configuration in use" }
func (*configCmd) Usage() string {
	return `compound config [-init]

  Prints the path of the config file, the store in use and the configuration.
  With -init, writes the configuration in use to the config file.

`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.init, "init", false, "Write the config file.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	if c.init {
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		log.Printf("write-config-file name=%q", config.Path())
	}
	fmt.Fprintf(output, "# config: %s\n# store: %s\n", config.Path(), StorePath())
	if err := toml.NewEncoder(output).Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
