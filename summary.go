package pft

import (
	"iter"

	"github.com/etnz/pft/date"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the net total of a category: incomes minus expenses.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary is the result of a single pass aggregation over transactions.
type Summary struct {
	// Categories in the order they were first seen.
	Categories    []CategoryTotal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal // a positive amount
	Count         int             // number of aggregated transactions
}

// Remaining returns the remaining balance: total income minus total expenses.
func (s Summary) Remaining() decimal.Decimal { return s.TotalIncome.Sub(s.TotalExpenses) }

// Category returns the net total of a category, and whether it was seen at all.
func (s Summary) Category(name string) (decimal.Decimal, bool) {
	for _, c := range s.Categories {
		if c.Category == name {
			return c.Total, true
		}
	}
	return decimal.Zero, false
}

// Summarize consumes seq in a single pass.
//
// Each income is added to its category and to the total income, each
// expense is subtracted from its category and added to the total expenses.
// A category used for both nets them together.
//
// The first error yielded by seq aborts the aggregation: no partial summary
// is returned.
func Summarize(seq iter.Seq2[Transaction, error]) (Summary, error) {
	var s Summary
	index := make(map[string]int) // category name to position in s.Categories
	for tx, err := range seq {
		if err != nil {
			return Summary{}, err
		}
		switch tx.Kind {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case Expense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(s.Categories)
			index[tx.Category] = i
			s.Categories = append(s.Categories, CategoryTotal{Category: tx.Category})
		}
		s.Categories[i].Total = s.Categories[i].Total.Add(tx.Signed())
		s.Count++
	}
	return s, nil
}

// InRange filters seq to the transactions dated within r. Errors are passed through.
func InRange(seq iter.Seq2[Transaction, error], r date.Range) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		for tx, err := range seq {
			if err == nil && !r.Contains(tx.Date) {
				continue
			}
			if !yield(tx, err) {
				return
			}
		}
	}
}
