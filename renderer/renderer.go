// Package renderer turns transactions and summaries into text for the terminal:
// fixed width lines for the interactive menu, and markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/pft"
	"github.com/etnz/pft/date"
)

//go:embed *.md
var templates embed.FS

// SummaryView is the data of the summary report.
type SummaryView struct {
	Range      string // empty for the whole ledger
	Count      int
	Categories []AmountLine
	Income     string
	Expenses   string
	Remaining  string
}

// AmountLine is a labelled, formatted amount.
type AmountLine struct {
	Name   string
	Amount string
}

// TransactionsView is the data of the transactions report.
type TransactionsView struct {
	Rows []TransactionLine
}

// TransactionLine is a transaction with all fields formatted.
type TransactionLine struct {
	Date, Type, Category, Amount, Description string
}

// NewSummaryView formats s. r is nil when the summary covers the whole ledger.
func NewSummaryView(s pft.Summary, r *date.Range, m Money) *SummaryView {
	v := &SummaryView{
		Count:     s.Count,
		Income:    m.Format(s.TotalIncome),
		Expenses:  m.Format(s.TotalExpenses),
		Remaining: m.Format(s.Remaining()),
	}
	if r != nil {
		v.Range = r.String()
	}
	for _, c := range s.Categories {
		v.Categories = append(v.Categories, AmountLine{Name: cell(c.Category), Amount: m.Signed(c.Total)})
	}
	return v
}

// NewTransactionsView formats txs.
func NewTransactionsView(txs []pft.Transaction, m Money) *TransactionsView {
	v := &TransactionsView{Rows: make([]TransactionLine, 0, len(txs))}
	for _, tx := range txs {
		v.Rows = append(v.Rows, TransactionLine{
			Date:        tx.Date.String(),
			Type:        tx.Kind.String(),
			Category:    cell(tx.Category),
			Amount:      m.Format(tx.Amount),
			Description: cell(tx.Description),
		})
	}
	return v
}

// cell escapes free text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// RenderSummary renders the summary report to a markdown string.
func RenderSummary(v *SummaryView) string {
	partials := map[string]string{
		"summary_title":      "summary_title.md",
		"summary_categories": "summary_categories.md",
		"summary_totals":     "summary_totals.md",
	}
	return renderTemplate("summary", "summary.md", partials, v)
}

// RenderTransactions renders the transactions report to a markdown string.
func RenderTransactions(v *TransactionsView) string {
	return renderTemplate("transactions", "transactions.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
