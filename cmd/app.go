// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pft"
	"github.com/etnz/pft/date"
	"github.com/etnz/pft/logger"
	"github.com/etnz/pft/renderer"
	"github.com/google/subcommands"
)

// Commands lists all the subcommands of the application.
// A main package registers them, and executes the user-selected one.
var Commands = []subcommands.Command{
	&menuCmd{},
	&initCmd{},
	&addCmd{},
	&listCmd{},
	&summaryCmd{},
	&exportCmd{},
	&queryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", pft.DefaultStorePath, "Path to the ledger file (CSV format)")
var currency = flag.String("currency", "", "ISO 4217 currency code used to display amounts, e.g. EUR. Amounts are prefixed with RS by default")
var verbose = flag.Bool("v", false, "Print diagnostics on stderr")

// WithLogger returns ctx carrying the application logger, writing to w.
// It must be called after the flags have been parsed.
func WithLogger(ctx context.Context, w io.Writer) context.Context {
	return logger.WithContext(ctx, logger.New(w, *verbose))
}

// openStore returns the Store for the ledger file selected by the flags.
func openStore(ctx context.Context) *pft.Store {
	return pft.NewStore(pft.Config{
		StorePath: *storePath,
		Logger:    logger.FromContext(ctx),
	})
}

// displayMoney returns the amount formatter selected by the flags.
func displayMoney() renderer.Money { return renderer.NewMoney(*currency) }

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// rangeFlags are the date filtering flags shared by list and summary.
type rangeFlags struct {
	period string
	start  string
	end    string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&r.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&r.end, "d", "", "The end date for the range. Defaults to today.")
}

// Range returns the selected range, or nil when no flag is set.
func (r *rangeFlags) Range() (*date.Range, error) {
	if r.period == "" && r.start == "" && r.end == "" {
		return nil, nil
	}
	end := date.Today()
	if r.end != "" {
		d, err := date.Parse(r.end)
		if err != nil {
			return nil, fmt.Errorf("error parsing end date: %w", err)
		}
		end = d
	}

	if r.start != "" {
		start, err := date.Parse(r.start)
		if err != nil {
			return nil, fmt.Errorf("error parsing start date: %w", err)
		}
		rg := date.Between(start, end)
		return &rg, nil
	}
	if r.period == "" {
		// Only an end date: everything up to it.
		rg := date.Range{From: date.New(1, time.January, 1), To: end}
		return &rg, nil
	}
	period, err := date.ParsePeriod(r.period)
	if err != nil {
		return nil, fmt.Errorf("error parsing period: %w", err)
	}
	rg := date.NewRange(end, period)
	return &rg, nil
}
