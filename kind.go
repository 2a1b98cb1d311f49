package pft

import (
	"fmt"
	"strings"
)

// Kind is the direction of a transaction. Amounts are always positive,
// the Kind tells whether they are earned or spent.
type Kind int

const (
	// Income adds money to the balance.
	Income Kind = iota + 1
	// Expense removes money from the balance.
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "unknown"
	}
}

// ParseKind parses "Income" or "Expense", ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction type %q", s)
	}
}

// Valid reports whether k is Income or Expense.
func (k Kind) Valid() bool { return k == Income || k == Expense }

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid transaction type %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
