package pft

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[Transaction, error]) ([]Transaction, error) {
	var txs []Transaction
	for tx, err := range seq {
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// EncodeJSON writes transactions as an indented JSON array.
func EncodeJSON(w io.Writer, txs []Transaction) error {
	if txs == nil {
		txs = []Transaction{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(txs); err != nil {
		return fmt.Errorf("failed to encode transactions to json: %w", err)
	}
	return nil
}

// yamlTransaction fixes the field order and the amount representation in YAML.
type yamlTransaction struct {
	Date        string     `yaml:"date"`
	Kind        string     `yaml:"type"`
	Category    string     `yaml:"category"`
	Amount      yamlAmount `yaml:"amount"`
	Description string     `yaml:"description,omitempty"`
}

// yamlAmount is written as a plain float scalar, with all its digits.
type yamlAmount decimal.Decimal

func (a yamlAmount) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: FormatAmount(decimal.Decimal(a))}, nil
}

// EncodeYAML writes transactions as a YAML sequence.
func EncodeYAML(w io.Writer, txs []Transaction) error {
	rows := make([]yamlTransaction, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, yamlTransaction{
			Date:        tx.Date.String(),
			Kind:        tx.Kind.String(),
			Category:    tx.Category,
			Amount:      yamlAmount(tx.Amount),
			Description: tx.Description,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode transactions to yaml: %w", err)
	}
	return enc.Close()
}

// Query evaluates a JSONPath expression against the JSON view of txs,
// i.e. the array written by EncodeJSON. For instance:
//
//	$[?(@.type=="Expense")].amount
func Query(txs []Transaction, path string) (any, error) {
	if txs == nil {
		txs = []Transaction{}
	}
	data, err := json.Marshal(txs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transactions to json: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode json view: %w", err)
	}
	res, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return res, nil
}
