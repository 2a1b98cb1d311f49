// Package pft implements a local-first personal finance tracker: an
// append-only ledger of income and expense transactions kept in a single
// CSV file, and the aggregation of those transactions into per-category
// and overall totals.
//
// The core functionalities include:
//   - Store: initializing the ledger file, appending validated
//     transactions, and reading them back lazily in file order.
//   - Summary: a single pass over the ledger computing the net total of
//     each category, the total income, the total expenses and the
//     remaining balance.
//   - Export: encoding the ledger to JSON or YAML, and querying its JSON
//     view with JSONPath expressions.
//
// This package serves as the foundational logic for the `pft`
// command-line tool, the ledger file being the single source of truth.
package pft
