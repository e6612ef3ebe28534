// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import (
	"fmt"
	"math"

	"github.com/luxfi/ids"
)

// Account is a raw account record as supplied through the generic fallback
// calling convention: the program that owns the record and its serialized
// data.
type Account struct {
	Program ids.ID
	Data    []byte
}

// TransferOwners names the programs owning the three account records involved
// in a transfer. All must be the hosting token program.
type TransferOwners struct {
	Source      ids.ID
	Mint        ids.ID
	Destination ids.ID
}

// CheckTransfer is the single cap decision function. Both calling-convention
// adapters delegate here so the logic cannot drift between entry points.
//
// A nil return accepts the transfer. The check is destination-only and
// balance-only: it bounds the resting balance, and self-transfers cannot
// bypass it because the post-balance check applies to the identical
// destination.
func CheckTransfer(cfg Config, destinationOwner ids.ID, destinationBalance uint64, amount uint64) error {
	if destinationOwner == cfg.ExemptWallet {
		// Exemption is unconditional and unlimited.
		return nil
	}
	post := saturatingAdd(destinationBalance, amount)
	if post > cfg.WalletCapRaw {
		return fmt.Errorf("%w: post-transfer balance %d over cap %d", ErrWalletCapExceeded, post, cfg.WalletCapRaw)
	}
	return nil
}

// ValidateTransferHook is the entry point invoked by the runtime's native
// hook convention, where the runtime has already resolved account ownership
// and deserialized the destination token account.
func ValidateTransferHook(tokenProgram ids.ID, owners TransferOwners, destination TokenAccount, amount uint64, cfg Config) error {
	for _, owner := range []ids.ID{owners.Source, owners.Mint, owners.Destination} {
		if owner != tokenProgram {
			return fmt.Errorf("%w: account owned by %s, want %s", ErrInvalidAccountOwner, owner, tokenProgram)
		}
	}
	return CheckTransfer(cfg, destination.Owner, destination.Balance, amount)
}

// ValidateTransferFallback is the generic entry point for callers that do not
// speak the native hook convention. It parses the raw destination record and
// delegates to ValidateTransferHook; it adds no logic of its own.
func ValidateTransferFallback(tokenProgram ids.ID, source, mint, destination Account, amount uint64, cfg Config) error {
	dest, err := UnmarshalTokenAccount(destination.Data)
	if err != nil {
		return fmt.Errorf("failed to parse destination account: %w", err)
	}
	owners := TransferOwners{
		Source:      source.Program,
		Mint:        mint.Program,
		Destination: destination.Program,
	}
	return ValidateTransferHook(tokenProgram, owners, dest, amount, cfg)
}

// saturatingAdd never overflows; it pins at the maximum representable value
// so an adversarial amount cannot wrap the post-balance below the cap.
func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
