// Package badgerstore implements store.Store on BadgerDB. Badger gives every
// transaction a consistent snapshot and detects write-write conflicts at
// commit; RunTransaction layers a bounded re-execution loop on top so callers
// see either a fully committed body or model.ErrTxAborted.
package badgerstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/store"
)

// DefaultRetries is the optimistic-conflict retry budget.
const DefaultRetries = 5

type Store struct {
	db      *badger.DB
	retries int
	log     zerolog.Logger
}

// Open creates or opens a Badger database at dir. retries <= 0 selects
// DefaultRetries.
func Open(dir string, retries int, log zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	if retries <= 0 {
		retries = DefaultRetries
	}
	return &Store{db: db, retries: retries, log: log}, nil
}

func (s *Store) RunTransaction(ctx context.Context, fn func(tx store.Tx) error) error {
	for attempt := 1; attempt <= s.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		btx := s.db.NewTransaction(true)
		if err := fn(&tx{txn: btx}); err != nil {
			btx.Discard()
			return err
		}

		err := btx.Commit()
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrConflict) {
			return fmt.Errorf("commit: %w", err)
		}
		s.log.Debug().Int("attempt", attempt).Msg("transaction conflict, retrying")
	}
	return fmt.Errorf("%w: conflict budget exhausted after %d attempts", model.ErrTxAborted, s.retries)
}

func (s *Store) View(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(btx *badger.Txn) error {
		return fn(&tx{txn: btx})
	})
}

func (s *Store) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger: database closed")
	}
	return ctx.Err()
}

func (s *Store) Close() error { return s.db.Close() }
