package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/pft"
)

// Rule separates the transactions header from the rows.
var Rule = strings.Repeat("-", 60)

const rowFormat = "%-12s%-16s%-15s%-12s%s"

// TransactionsHeader returns the column titles matching Row.
func TransactionsHeader() string {
	return fmt.Sprintf(rowFormat, "Date", "Type", "Category", "Amount", "Description")
}

// Row renders a transaction as a fixed width line.
func Row(tx pft.Transaction, m Money) string {
	return fmt.Sprintf(rowFormat, tx.Date, tx.Kind, tx.Category, m.Format(tx.Amount), tx.Description)
}

// WriteSummary writes the category summary followed by the totals.
func WriteSummary(w io.Writer, s pft.Summary, m Money) error {
	var b strings.Builder
	b.WriteString("Category Summary:\n")
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "%s: %s\n", c.Category, m.Signed(c.Total))
	}
	fmt.Fprintf(&b, "\nTotal Income: %s\n", m.Format(s.TotalIncome))
	fmt.Fprintf(&b, "Total Expenses: %s\n", m.Format(s.TotalExpenses))
	fmt.Fprintf(&b, "Remaining Balance: %s\n", m.Format(s.Remaining()))
	_, err := io.WriteString(w, b.String())
	return err
}
