package pft

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"

	"github.com/etnz/pft/date"
	"github.com/rs/zerolog"
)

// Store is the CSV ledger file.
//
// A Store keeps no state about the file: every operation opens it, performs
// a single read or write, and closes it. Concurrent writers are not supported.
type Store struct {
	path  string
	log   zerolog.Logger
	today func() date.Date
}

// NewStore returns a Store for the ledger file described by cfg.
// It does not touch the file system, call Init to create the file.
func NewStore(cfg Config) *Store {
	path := cfg.StorePath
	if path == "" {
		path = DefaultStorePath
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("store", path).Logger()
	}
	return &Store{path: path, log: log, today: date.Today}
}

// Path returns the path to the ledger file.
func (s *Store) Path() string { return s.path }

// Init creates the ledger file with its header line.
// If the file already exists it is left untouched and Init returns nil.
func (s *Store) Init() error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		s.log.Debug().Msg("ledger already exists")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error creating ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	if err := EncodeHeader(f); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing ledger file %q: %w", s.path, err)
	}
	s.log.Debug().Msg("ledger created")
	return nil
}

// Add validates req and appends the resulting transaction to the ledger.
//
// A *ValidationError is returned when req is rejected, in which case the
// ledger file has not been opened.
func (s *Store) Add(req Request) (Transaction, error) {
	tx, err := req.Transaction(s.today())
	if err != nil {
		return Transaction{}, err
	}
	if err := s.Append(tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Append appends a single transaction at the end of the ledger file.
//
// The record is fully encoded before the file is opened and written with a
// single call, so that a failure never leaves half a record behind.
// A missing file is created with its header.
func (s *Store) Append(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := EncodeTransaction(&buf, tx); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", s.path, err)
	}
	if info.Size() == 0 {
		var record bytes.Buffer
		if err := EncodeHeader(&record); err != nil {
			return err
		}
		record.Write(buf.Bytes())
		buf = record
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing to ledger file %q: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing ledger file %q: %w", s.path, err)
	}
	s.log.Debug().Str("date", tx.Date.String()).Stringer("type", tx.Kind).Str("category", tx.Category).Msg("transaction appended")
	return nil
}

// Transactions returns an iterator over all transactions in file order.
//
// The file is opened afresh on every iteration. A missing file yields
// ErrNoTransactions, a malformed row yields a *RowError. In both cases the
// iteration stops after the error.
func (s *Store) Transactions() iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		f, err := os.Open(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Msg("ledger does not exist")
			yield(Transaction{}, ErrNoTransactions)
			return
		}
		if err != nil {
			yield(Transaction{}, fmt.Errorf("error opening ledger file %q: %w", s.path, err))
			return
		}
		defer f.Close()

		count := 0
		for tx, err := range DecodeTransactions(f) {
			if err != nil {
				s.log.Debug().Err(err).Int("read", count).Msg("ledger read failed")
				yield(Transaction{}, err)
				return
			}
			count++
			if !yield(tx, nil) {
				return
			}
		}
		s.log.Debug().Int("read", count).Msg("ledger read")
	}
}

// Summarize aggregates all the transactions of the ledger.
// See Summarize for details.
func (s *Store) Summarize() (Summary, error) {
	return Summarize(s.Transactions())
}
