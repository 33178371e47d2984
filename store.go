package cashflow

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
)

// StorageKey is the single key under which the whole ledger document
// lives in the key-value store.
const StorageKey = "ledger"

// KV is the persistence primitive the store depends on: whole-value get
// and set by key. Get returns an error wrapping fs.ErrNotExist when the
// key has never been written.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Store owns the authoritative in-memory ledger and writes it back as one
// document after every successful mutation. A single store is created at
// startup and injected into whatever consumes the ledger; there is no
// global.
type Store struct {
	kv     KV
	ledger *Ledger
}

// Open loads the ledger from the key-value store. A missing document
// starts a fresh ledger; a corrupt or unreadable one is logged and also
// falls back to defaults rather than failing startup.
func Open(kv KV) *Store {
	s := &Store{kv: kv, ledger: NewLedger()}
	data, err := kv.Get(StorageKey)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// first run
	case err != nil:
		log.Printf("cannot load ledger, starting empty: %v", err)
	default:
		l, err := DecodeState(bytes.NewReader(data))
		if err != nil {
			log.Printf("cannot decode ledger, starting empty: %v", err)
		} else {
			s.ledger = l
		}
	}
	return s
}

// Ledger returns the current authoritative state. Treat it as read-only;
// all mutations go through Update.
func (s *Store) Ledger() *Ledger { return s.ledger }

// Update runs a mutation against a clone of the current ledger, persists
// the result and only then swaps it in. The commit is all-or-nothing: if
// the mutation, the encoding or the write fails, the in-memory state is
// untouched.
func (s *Store) Update(mutate func(l *Ledger) error) error {
	next := s.ledger.clone()
	if err := mutate(next); err != nil {
		return err
	}
	return s.Replace(next)
}

// Replace persists the given ledger and makes it the authoritative state.
// Used by Update and by whole-state import.
func (s *Store) Replace(l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeState(&buf, l); err != nil {
		return err
	}
	if err := s.kv.Set(StorageKey, buf.Bytes()); err != nil {
		return fmt.Errorf("cannot persist ledger: %w", err)
	}
	s.ledger = l
	return nil
}
