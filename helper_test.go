package pft

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/pft/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// txCmp compares transactions by value: decimals by numeric equality.
var txCmp = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// fixedToday is the date used as 'today' in tests.
var fixedToday = date.New(2024, 3, 15)

// newTestStore returns a Store on a fresh file in a temporary folder, with a fixed 'today'.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(Config{StorePath: filepath.Join(t.TempDir(), DefaultStorePath)})
	s.today = func() date.Date { return fixedToday }
	return s
}

// writeLedger writes raw content to the store file.
func writeLedger(t *testing.T, s *Store, content string) {
	t.Helper()
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write ledger: %v", err)
	}
}

// readLedger returns the raw content of the store file.
func readLedger(t *testing.T, s *Store) string {
	t.Helper()
	content, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("failed to read ledger: %v", err)
	}
	return string(content)
}

// mustAdd adds a transaction and fails the test on error.
func mustAdd(t *testing.T, s *Store, req Request) Transaction {
	t.Helper()
	tx, err := s.Add(req)
	if err != nil {
		t.Fatalf("Add(%+v) unexpected error: %v", req, err)
	}
	return tx
}

// count returns the number of transactions in the store, failing on any error.
func count(t *testing.T, s *Store) int {
	t.Helper()
	txs, err := Collect(s.Transactions())
	if err != nil {
		t.Fatalf("Transactions() unexpected error: %v", err)
	}
	return len(txs)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
