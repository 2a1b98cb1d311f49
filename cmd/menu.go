package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/pft"
	"github.com/etnz/pft/renderer"
	"github.com/google/subcommands"
)

const (
	menuText = `
--- Personal Finance Tracker ---
1. Add Transaction
2. View Transactions
3. Summarize by Category
4. Exit
`
	noTransactions = "No transactions found. Add some first."
	invalidChoice  = "Invalid choice. Please try again."
	goodbye        = "Thank you for using the finance tracker!"
)

// Menu is the interactive loop over a Store.
type Menu struct {
	in    *bufio.Reader
	out   io.Writer
	store *pft.Store
	money renderer.Money
}

// NewMenu returns a Menu reading answers from in and printing to out.
func NewMenu(in io.Reader, out io.Writer, store *pft.Store, m renderer.Money) *Menu {
	return &Menu{in: bufio.NewReader(in), out: out, store: store, money: m}
}

// Run initializes the store, then shows the menu until the user exits or
// the input is exhausted.
//
// Invalid answers, an empty ledger or a malformed row are reported and the
// menu is shown again. Any other error stops the loop and is returned.
func (m *Menu) Run() error {
	if err := m.store.Init(); err != nil {
		return err
	}
	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.ask("Enter your choice: ")
		if err != nil {
			return m.quit(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.add()
		case "2":
			err = m.list()
		case "3":
			err = m.summarize()
		case "4":
			fmt.Fprintln(m.out, goodbye)
			return nil
		default:
			fmt.Fprintln(m.out, invalidChoice)
			continue
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return m.quit(err)
		case errors.Is(err, pft.ErrNoTransactions):
			fmt.Fprintln(m.out, noTransactions)
		case pft.IsValidation(err), errors.Is(err, pft.ErrMalformedRow):
			fmt.Fprintf(m.out, "Error: %v\n", err)
		default:
			return err
		}
	}
}

// quit ends the loop: end of input is a normal exit.
func (m *Menu) quit(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, goodbye)
		return nil
	}
	return fmt.Errorf("error reading input: %w", err)
}

// ask prints the prompt and reads one line, without its line ending.
// io.EOF is returned only if nothing at all could be read.
func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) add() error {
	var req pft.Request
	for _, q := range []struct {
		prompt string
		answer *string
	}{
		{"Enter type (Income/Expense): ", &req.Kind},
		{"Enter category (e.g., Food, Rent, Salary etc...): ", &req.Category},
		{fmt.Sprintf("Enter amount (in %s): ", m.money.Symbol()), &req.Amount},
		{"Enter description (optional): ", &req.Description},
		{"Enter date (YYYY-MM-DD) or leave blank for today: ", &req.Date},
	} {
		a, err := m.ask(q.prompt)
		if err != nil {
			return err
		}
		*q.answer = a
	}

	if _, err := m.store.Add(req); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Transaction added successfully!")
	return nil
}

func (m *Menu) list() error {
	section := renderer.TransactionsSection(m.out, "\nTransactions:")
	for tx, err := range m.store.Transactions() {
		if err != nil {
			return err
		}
		section.Println(renderer.Row(tx, m.money))
	}
	if section.Rows() == 0 {
		return pft.ErrNoTransactions
	}
	return nil
}

func (m *Menu) summarize() error {
	s, err := m.store.Summarize()
	if err != nil {
		return err
	}
	if s.Count == 0 {
		return pft.ErrNoTransactions
	}
	fmt.Fprintln(m.out)
	return renderer.WriteSummary(m.out, s, m.money)
}

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu (default)" }
func (*menuCmd) Usage() string {
	return `pft [-store <file>] menu

  Creates the ledger file if needed, then loops on a menu to add,
  view and summarize transactions.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	menu := NewMenu(os.Stdin, os.Stdout, openStore(ctx), displayMoney())
	if err := menu.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
