// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package configstore persists one governed-asset config record per mint in
// a key-value database, addressed deterministically so any reader can locate
// a record from the mint alone.
package configstore

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/luxfi/capgate/pkg/constants"
	"github.com/luxfi/capgate/pkg/gate"
	"github.com/luxfi/database"
	"github.com/luxfi/ids"
)

// DeriveAddress computes the record address for a given label and mint:
// sha256(label || mint). No two mints can collide, and the address is
// recomputable without an index.
func DeriveAddress(label string, mint ids.ID) ids.ID {
	h := sha256.New()
	h.Write([]byte(label))
	h.Write(mint[:])
	var addr ids.ID
	copy(addr[:], h.Sum(nil))
	return addr
}

// ConfigAddress is the Config record address for mint.
func ConfigAddress(mint ids.ID) ids.ID {
	return DeriveAddress(constants.ConfigSeed, mint)
}

// ExtraAccountMetasAddress is the resolver record address for mint.
func ExtraAccountMetasAddress(mint ids.ID) ids.ID {
	return DeriveAddress(constants.ExtraAccountMetasSeed, mint)
}

// Store reads and writes per-asset records. Each mint's records are
// independent; there is no cross-asset state.
type Store struct {
	db database.Database
}

func New(db database.Database) *Store {
	return &Store{db: db}
}

// InitializeConfig writes the config record for mint. A record may be
// created exactly once; re-invocation fails rather than overwriting.
func (s *Store) InitializeConfig(mint ids.ID, cfg gate.Config) error {
	addr := ConfigAddress(mint)
	switch _, err := s.db.Get(addr[:]); {
	case err == nil:
		return fmt.Errorf("%w: config for mint %s", gate.ErrAlreadyInitialized, mint)
	case !errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("failed to check config record: %w", err)
	}
	return s.putRecord(addr, gate.MarshalConfig(cfg))
}

// GetConfig loads the config record for mint.
func (s *Store) GetConfig(mint ids.ID) (gate.Config, error) {
	addr := ConfigAddress(mint)
	buf, err := s.db.Get(addr[:])
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return gate.Config{}, fmt.Errorf("%w: %s", gate.ErrConfigNotFound, mint)
		}
		return gate.Config{}, fmt.Errorf("failed to read config record: %w", err)
	}
	return gate.UnmarshalConfig(buf)
}

// PutConfig rewrites the config record for mint. The record must already
// exist; only governance operations call this.
func (s *Store) PutConfig(mint ids.ID, cfg gate.Config) error {
	addr := ConfigAddress(mint)
	if _, err := s.db.Get(addr[:]); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("%w: %s", gate.ErrConfigNotFound, mint)
		}
		return fmt.Errorf("failed to read config record: %w", err)
	}
	return s.putRecord(addr, gate.MarshalConfig(cfg))
}

// InitRecord writes an auxiliary record at addr once; a second call fails.
func (s *Store) InitRecord(addr ids.ID, data []byte) error {
	switch _, err := s.db.Get(addr[:]); {
	case err == nil:
		return fmt.Errorf("%w: record %s", gate.ErrAlreadyInitialized, addr)
	case !errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("failed to check record: %w", err)
	}
	return s.putRecord(addr, data)
}

// GetRecord reads an auxiliary record. Absence surfaces as
// database.ErrNotFound for the caller to translate.
func (s *Store) GetRecord(addr ids.ID) ([]byte, error) {
	buf, err := s.db.Get(addr[:])
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", addr, err)
	}
	return buf, nil
}

// putRecord writes a single record through a batch so the write is applied
// atomically or not at all.
func (s *Store) putRecord(addr ids.ID, data []byte) error {
	batch := s.db.NewBatch()
	if err := batch.Put(addr[:], data); err != nil {
		return fmt.Errorf("failed to stage record: %w", err)
	}
	if err := batch.Write(); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
