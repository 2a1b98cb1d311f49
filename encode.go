package pft

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/etnz/pft/date"
	"github.com/shopspring/decimal"
)

// Header is the first line of every ledger file.
var Header = []string{"Date", "Type", "Category", "Amount", "Description"}

// EncodeHeader writes the ledger header line.
func EncodeHeader(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// EncodeTransaction writes a single transaction as one CSV record.
//
// Fields containing the delimiter, quotes or newlines are quoted so that
// free text round-trips through DecodeTransactions.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	cw := csv.NewWriter(w)
	record := []string{
		tx.Date.String(),
		tx.Kind.String(),
		tx.Category,
		FormatAmount(tx.Amount),
		tx.Description,
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// FormatAmount formats an amount as a plain decimal with at least two fraction digits.
// Extra digits are kept, the amount is never rounded.
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if i := strings.IndexByte(s, '.'); i < 0 || len(s)-i-1 < 2 {
		return d.StringFixed(2)
	}
	return s
}

// DecodeTransactions returns an iterator over the transactions of a ledger
// file, in file order. The first record must be the Header.
//
// Decoding stops at the first malformed row, which is yielded as a *RowError.
// An empty input yields nothing.
func DecodeTransactions(r io.Reader) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = len(Header)

		for first := true; ; first = false {
			record, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				var perr *csv.ParseError
				if errors.As(err, &perr) {
					yield(Transaction{}, &RowError{Line: perr.StartLine, Err: perr.Err})
					return
				}
				yield(Transaction{}, fmt.Errorf("error reading from input: %w", err))
				return
			}
			line, _ := cr.FieldPos(0)

			if first {
				if !isHeader(record) {
					yield(Transaction{}, &RowError{Line: line, Err: fmt.Errorf("unexpected header %q, want %q", record, Header)})
					return
				}
				continue
			}

			tx, err := decodeRecord(record)
			if err != nil {
				yield(Transaction{}, &RowError{Line: line, Err: err})
				return
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

func isHeader(record []string) bool {
	// Tolerate a byte order mark written by spreadsheet tools.
	record = slices.Clone(record)
	record[0] = strings.TrimPrefix(record[0], "\ufeff")
	return slices.Equal(record, Header)
}

// decodeRecord converts a CSV record into a Transaction, enforcing the same
// invariants as when it was written.
func decodeRecord(record []string) (Transaction, error) {
	on, err := date.Parse(record[0])
	if err != nil {
		return Transaction{}, err
	}
	kind, err := ParseKind(record[1])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q: %w", record[3], err)
	}
	if reason := checkAmount(amount); reason != "" {
		return Transaction{}, fmt.Errorf("invalid amount %q: %s", record[3], reason)
	}
	return Transaction{
		Date:        on,
		Kind:        kind,
		Category:    record[2],
		Amount:      amount,
		Description: record[4],
	}, nil
}
