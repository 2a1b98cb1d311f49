package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pft"
	"github.com/etnz/pft/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	rangeFlags
	head     int
	tail     int
	markdown bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*listCmd) Usage() string {
	return `pft list [-p <period> | -s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>] [-md]

  Lists transactions in the order they were added, with options for filtering and limiting the output.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
	f.BoolVar(&c.markdown, "md", false, "Render a markdown table.")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	seq := openStore(ctx).Transactions()
	if r != nil {
		seq = pft.InRange(seq, *r)
	}
	transactions, err := pft.Collect(seq)
	if err == nil && len(transactions) == 0 {
		err = pft.ErrNoTransactions
	}
	switch {
	case errors.Is(err, pft.ErrNoTransactions):
		fmt.Println(noTransactions)
		return subcommands.ExitSuccess
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	m := displayMoney()
	if c.markdown {
		printMarkdown(os.Stdout, renderer.RenderTransactions(renderer.NewTransactionsView(transactions, m)))
		return subcommands.ExitSuccess
	}
	section := renderer.TransactionsSection(os.Stdout, "")
	for _, tx := range transactions {
		section.Println(renderer.Row(tx, m))
	}
	return subcommands.ExitSuccess
}
