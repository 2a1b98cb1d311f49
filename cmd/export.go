package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pft"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as json or yaml" }
func (*exportCmd) Usage() string {
	return `pft export [-format json|yaml] [-o <file>]

  Writes every transaction of the ledger, in the order they were added.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json or yaml.")
	f.StringVar(&c.output, "o", "-", "Output file. Use '-' for stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var encode func(io.Writer, []pft.Transaction) error
	switch c.format {
	case "json":
		encode = pft.EncodeJSON
	case "yaml", "yml":
		encode = pft.EncodeYAML
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want json or yaml\n", c.format)
		return subcommands.ExitUsageError
	}

	transactions, err := pft.Collect(openStore(ctx).Transactions())
	if errors.Is(err, pft.ErrNoTransactions) {
		transactions, err = nil, nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "-" {
		f, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	}

	if err := encode(w, transactions); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
