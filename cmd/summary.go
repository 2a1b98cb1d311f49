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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	rangeFlags
	markdown bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "summarize transactions by category" }
func (*summaryCmd) Usage() string {
	return `pft summary [-p <period> | -s <start_date>] [-d <end_date>] [-md]

  Displays the net total of each category, then the total income,
  the total expenses and the remaining balance.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.BoolVar(&c.markdown, "md", false, "Render a markdown report.")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	seq := openStore(ctx).Transactions()
	if r != nil {
		seq = pft.InRange(seq, *r)
	}
	s, err := pft.Summarize(seq)
	if err == nil && s.Count == 0 {
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

	m := displayMoney()
	if c.markdown {
		printMarkdown(os.Stdout, renderer.RenderSummary(renderer.NewSummaryView(s, r, m)))
		return subcommands.ExitSuccess
	}
	if err := renderer.WriteSummary(os.Stdout, s, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
