package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pft"
	"github.com/etnz/pft/renderer"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	req pft.Request
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction to the ledger" }
func (*addCmd) Usage() string {
	return `pft add -t <income|expense> -c <category> -a <amount> [-m <description>] [-d <date>]

  Appends a transaction to the ledger.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.req.Kind, "t", "", "Transaction type: income or expense.")
	f.StringVar(&c.req.Category, "c", "", "Category, e.g. Food, Rent, Salary.")
	f.StringVar(&c.req.Amount, "a", "", "Amount, a positive number.")
	f.StringVar(&c.req.Description, "m", "", "Optional description.")
	f.StringVar(&c.req.Date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore(ctx)
	tx, err := store.Add(c.req)
	if pft.IsValidation(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger %q: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", store.Path())
	fmt.Println(renderer.Row(tx, displayMoney()))
	return subcommands.ExitSuccess
}
