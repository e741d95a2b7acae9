// Command compound plans a personal budget and projects investments,
// mortgages, goals and net wealth.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/compound/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits when the shell asks for completions, COMP_INSTALL=1 installs them.
	cmd.Completion(commander).Complete("compound")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
