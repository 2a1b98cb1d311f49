// Command pft is a personal finance tracker.
//
// Without a subcommand it runs the interactive menu on the ledger file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pft/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if flag.NArg() == 0 {
		// Global flags only: run the menu.
		flag.CommandLine.Parse(append(os.Args[1:], "menu"))
	}

	ctx := cmd.WithLogger(context.Background(), os.Stderr)
	os.Exit(int(commander.Execute(ctx)))
}
