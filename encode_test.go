package pft

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/pft/date"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"50000", "50000.00"},
		{"50000.0", "50000.00"},
		{"1.5", "1.50"},
		{"1.50000", "1.50"},
		{"1.005", "1.005"},
		{"0.125", "0.125"},
		{"1e3", "1000.00"},
	}
	for _, tc := range testCases {
		if got := FormatAmount(dec(tc.in)); got != tc.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeTransactionQuotesFreeText(t *testing.T) {
	var b bytes.Buffer
	tx := Transaction{
		Date:        date.New(2024, 1, 5),
		Kind:        Expense,
		Category:    "Food, Drinks",
		Amount:      dec("12"),
		Description: `say "cheese"`,
	}
	if err := EncodeTransaction(&b, tx); err != nil {
		t.Fatal(err)
	}
	want := `2024-01-05,Expense,"Food, Drinks",12.00,"say ""cheese"""` + "\n"
	if got := b.String(); got != want {
		t.Errorf("EncodeTransaction() = %q, want %q", got, want)
	}
}

func TestDecodeTransactions(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		wantCount int
		wantLine  int // 0 when no error is expected
	}{
		{name: "empty file", content: "", wantCount: 0},
		{name: "header only", content: header, wantCount: 0},
		{name: "header with bom", content: "\ufeff" + header + "2024-01-01,Income,Salary,1,\n", wantCount: 1},
		{name: "blank lines", content: header + "\n2024-01-01,Income,Salary,1,\n\n", wantCount: 1},
		{name: "quoted newline", content: header + "2024-01-01,Income,Salary,1,\"two\nlines\"\n", wantCount: 1},
		{name: "case insensitive type", content: header + "2024-01-01,income,Salary,1,\n", wantCount: 1},
		{name: "wrong header", content: "date,type\n", wantLine: 1},
		{name: "missing field", content: header + "2024-01-01,Income,Salary,1\n", wantLine: 2},
		{name: "bad amount", content: header + "2024-01-01,Income,Salary,1,\n2024-01-01,Income,Salary,RS1,\n", wantCount: 1, wantLine: 3},
		{name: "negative amount", content: header + "2024-01-01,Income,Salary,-1,\n", wantLine: 2},
		{name: "bad type", content: header + "2024-01-01,Loan,Bank,1,\n", wantLine: 2},
		{name: "bad date", content: header + "2024-13-40,Income,Salary,1,\n", wantLine: 2},
		{name: "amount above ceiling", content: header + "2024-01-01,Income,Salary,2000000000000.00,\n", wantLine: 2},
		{name: "amount with huge exponent", content: header + "2024-01-01,Income,Salary,1e50000000,\n", wantLine: 2},
		{name: "amount too precise", content: header + "2024-01-01,Income,Salary,0.000000001,\n", wantLine: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := 0
			var gotErr error
			for _, err := range DecodeTransactions(strings.NewReader(tc.content)) {
				if err != nil {
					gotErr = err
					continue
				}
				n++
			}
			if n != tc.wantCount {
				t.Errorf("decoded %d transactions, want %d", n, tc.wantCount)
			}
			if tc.wantLine == 0 {
				if gotErr != nil {
					t.Errorf("unexpected error: %v", gotErr)
				}
				return
			}
			var rowErr *RowError
			if !errors.As(gotErr, &rowErr) {
				t.Fatalf("error = %v, want a *RowError", gotErr)
			}
			if rowErr.Line != tc.wantLine {
				t.Errorf("RowError.Line = %d, want %d", rowErr.Line, tc.wantLine)
			}
		})
	}
}
