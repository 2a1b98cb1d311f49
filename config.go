package pft

import "github.com/rs/zerolog"

// DefaultStorePath is the ledger file name, relative to the working directory.
const DefaultStorePath = "finance_tracker.csv"

// Config holds everything a Store needs.
type Config struct {
	// StorePath is the path to the CSV ledger file.
	StorePath string
	// Logger receives diagnostics. Nil discards them.
	Logger *zerolog.Logger
}

// DefaultConfig returns a Config for DefaultStorePath with logging disabled.
func DefaultConfig() Config {
	return Config{StorePath: DefaultStorePath}
}
