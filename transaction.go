package pft

import (
	"fmt"
	"strings"

	"github.com/etnz/pft/date"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount a single transaction can carry.
var MaxAmount = decimal.New(1, 12)

// MaxDecimalPlaces is the largest number of fraction digits an amount can be written with.
const MaxDecimalPlaces = 8

// checkAmount returns why d cannot be a transaction amount, or "" if it can.
//
// Exponents are checked before comparing to MaxAmount, which would expand
// amounts like 1e50000000 or 1e-50000000.
func checkAmount(d decimal.Decimal) string {
	switch {
	case !d.IsPositive():
		return "amount must be greater than zero"
	case d.Exponent() < -MaxDecimalPlaces:
		return fmt.Sprintf("amount must have at most %d decimal places", MaxDecimalPlaces)
	case d.Exponent() > MaxAmount.Exponent() || d.GreaterThan(MaxAmount):
		return "amount must not exceed " + MaxAmount.String()
	}
	return ""
}

// normalizeText trims s and turns "\r\n" and lone "\r" into "\n",
// the only line ending a CSV field reads back.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}

// Transaction is a single ledger record. Transactions are immutable once
// written to the ledger.
type Transaction struct {
	Date        date.Date       `json:"date"`
	Kind        Kind            `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"` // always strictly positive
	Description string          `json:"description"`
}

// Signed returns the amount with the sign of its kind: positive for an income, negative for an expense.
func (tx Transaction) Signed() decimal.Decimal {
	if tx.Kind == Expense {
		return tx.Amount.Neg()
	}
	return tx.Amount
}

// Validate checks the invariants of a transaction that is about to be persisted.
func (tx Transaction) Validate() error {
	if !tx.Kind.Valid() {
		return &ValidationError{Field: "type", Value: tx.Kind.String(), Reason: `must be "Income" or "Expense"`}
	}
	if reason := checkAmount(tx.Amount); reason != "" {
		return &ValidationError{Field: "amount", Value: tx.Amount.String(), Reason: reason}
	}
	if tx.Date.IsZero() {
		return &ValidationError{Field: "date", Value: "", Reason: "is missing"}
	}
	return nil
}

// Request is a transaction as typed by the user, before validation.
// All fields are raw text.
type Request struct {
	Kind        string // "Income" or "Expense", case insensitive
	Category    string
	Amount      string // a strictly positive decimal number
	Description string // optional
	Date        string // YYYY-MM-DD, optional
}

// Transaction validates the request as a unit and returns the normalized
// transaction. A blank date defaults to 'today'.
func (r Request) Transaction(today date.Date) (Transaction, error) {
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return Transaction{}, &ValidationError{Field: "type", Value: r.Kind, Reason: `please enter "Income" or "Expense"`}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return Transaction{}, &ValidationError{Field: "amount", Value: r.Amount, Reason: "please enter a numeric value"}
	}
	if reason := checkAmount(amount); reason != "" {
		return Transaction{}, &ValidationError{Field: "amount", Value: r.Amount, Reason: reason}
	}

	on := today
	if s := strings.TrimSpace(r.Date); s != "" {
		if on, err = date.Parse(s); err != nil {
			return Transaction{}, &ValidationError{Field: "date", Value: r.Date, Reason: "please use YYYY-MM-DD"}
		}
	}

	return Transaction{
		Date:        on,
		Kind:        kind,
		Category:    normalizeText(r.Category),
		Amount:      amount,
		Description: normalizeText(r.Description),
	}, nil
}
