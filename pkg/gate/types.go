// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gate implements the per-asset wallet-cap validation and governance
// state for a capped fungible token. The hosting ledger runtime invokes the
// validation engine on every transfer of the asset; governance operations
// mutate the per-asset config under a mandatory timelock.
package gate

import (
	"time"

	"github.com/luxfi/ids"
)

const (
	// DefaultWalletCap is the cap installed at initialization:
	// 5 tokens with 9 decimals, 0.5% of the 1000-token baseline supply.
	DefaultWalletCap uint64 = 5_000_000_000

	// MaxWalletCap bounds governance proposals: 100 tokens with 9 decimals,
	// 10% of the baseline supply. A cap above this would effectively disable
	// the protection; a cap of zero would brick all non-exempt transfers.
	MaxWalletCap uint64 = 100_000_000_000

	// TimelockDuration is the mandatory delay between proposing a cap change
	// and being able to execute it. Measured in wall-clock time, not blocks.
	TimelockDuration = 48 * time.Hour
)

// Config is the per-asset governed state. One record exists per mint, created
// once at provisioning time and mutated only by governance operations.
type Config struct {
	// Version is the schema version of the stored record. It only increases,
	// and only through a registered migration.
	Version uint8

	// ExemptWallet is the single wallet excluded from the cap check. Fixed at
	// creation.
	ExemptWallet ids.ID

	// WalletCapRaw is the maximum resting balance, in the asset's smallest
	// unit, permitted for any non-exempt holder.
	WalletCapRaw uint64

	// GovernanceAuthority is the sole principal permitted to mutate
	// governance fields. Rotatable without delay.
	GovernanceAuthority ids.ID

	// Pending holds the at-most-one outstanding cap proposal.
	Pending PendingSlot
}

// PendingCapUpdate is a cap proposal created by Propose and consumed by
// Execute or Cancel.
type PendingCapUpdate struct {
	NewCap uint64

	// ProposedAt and ExecutionTime are unix seconds. ExecutionTime is fixed
	// at ProposedAt + TimelockDuration when the proposal is recorded and is
	// never recomputed.
	ProposedAt    int64
	ExecutionTime int64
}

// PendingSlot models the optional pending proposal as an explicit
// present/absent pair so the empty state is first class rather than a nil
// pointer.
type PendingSlot struct {
	present bool
	update  PendingCapUpdate
}

// SomePending returns a slot holding u.
func SomePending(u PendingCapUpdate) PendingSlot {
	return PendingSlot{present: true, update: u}
}

// Present reports whether a proposal is outstanding.
func (s PendingSlot) Present() bool {
	return s.present
}

// Get returns the outstanding proposal, if any.
func (s PendingSlot) Get() (PendingCapUpdate, bool) {
	return s.update, s.present
}

// Clear empties the slot.
func (s *PendingSlot) Clear() {
	*s = PendingSlot{}
}

// NewConfig returns the config installed by the one-time initialize
// operation: schema version 1, the default cap, and no pending proposal.
func NewConfig(exemptWallet ids.ID, governanceAuthority ids.ID) Config {
	return Config{
		Version:             1,
		ExemptWallet:        exemptWallet,
		WalletCapRaw:        DefaultWalletCap,
		GovernanceAuthority: governanceAuthority,
	}
}
