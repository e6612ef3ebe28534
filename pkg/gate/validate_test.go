// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import (
	"math"
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func testConfig() (Config, ids.ID, ids.ID) {
	exempt := ids.GenerateTestID()
	authority := ids.GenerateTestID()
	return NewConfig(exempt, authority), exempt, authority
}

func TestCheckTransferUnderCap(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	holder := ids.GenerateTestID()

	// 2 + 2 tokens lands below the 5-token default cap.
	require.NoError(CheckTransfer(cfg, holder, 2_000_000_000, 2_000_000_000))
}

func TestCheckTransferExactlyAtCap(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	holder := ids.GenerateTestID()

	// Landing exactly on the cap is allowed; the cap bounds, it does not exclude.
	require.NoError(CheckTransfer(cfg, holder, 3_000_000_000, 2_000_000_000))
}

func TestCheckTransferOverCap(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	holder := ids.GenerateTestID()

	err := CheckTransfer(cfg, holder, 3_000_000_000, 2_000_000_001)
	require.ErrorIs(err, ErrWalletCapExceeded)
}

func TestCheckTransferZeroAmount(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	holder := ids.GenerateTestID()

	// A zero transfer to a wallet at the cap changes nothing and passes.
	require.NoError(CheckTransfer(cfg, holder, DefaultWalletCap, 0))

	// A zero transfer to a wallet already above the cap still fails: the
	// resting balance, not the delta, is what the check bounds.
	err := CheckTransfer(cfg, holder, DefaultWalletCap+1, 0)
	require.ErrorIs(err, ErrWalletCapExceeded)
}

func TestCheckTransferExemptWallet(t *testing.T) {
	require := require.New(t)
	cfg, exempt, _ := testConfig()

	// The exempt wallet passes regardless of balance or amount.
	require.NoError(CheckTransfer(cfg, exempt, math.MaxUint64, math.MaxUint64))
}

func TestCheckTransferOverflowSaturates(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	holder := ids.GenerateTestID()

	// balance + amount would wrap; the saturated sum must still trip the cap.
	err := CheckTransfer(cfg, holder, math.MaxUint64, math.MaxUint64)
	require.ErrorIs(err, ErrWalletCapExceeded)
}

func TestValidateTransferHookOwnership(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	tokenProgram := ids.GenerateTestID()
	dest := TokenAccount{Owner: ids.GenerateTestID(), Balance: 0}

	owners := TransferOwners{
		Source:      tokenProgram,
		Mint:        tokenProgram,
		Destination: tokenProgram,
	}
	require.NoError(ValidateTransferHook(tokenProgram, owners, dest, 1, cfg))

	for _, tampered := range []TransferOwners{
		{Source: ids.GenerateTestID(), Mint: tokenProgram, Destination: tokenProgram},
		{Source: tokenProgram, Mint: ids.GenerateTestID(), Destination: tokenProgram},
		{Source: tokenProgram, Mint: tokenProgram, Destination: ids.GenerateTestID()},
	} {
		err := ValidateTransferHook(tokenProgram, tampered, dest, 1, cfg)
		require.ErrorIs(err, ErrInvalidAccountOwner)
	}
}

func TestValidateTransferFallbackDelegates(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	tokenProgram := ids.GenerateTestID()
	holder := ids.GenerateTestID()

	destData := MarshalTokenAccount(TokenAccount{Owner: holder, Balance: 4_000_000_000})
	source := Account{Program: tokenProgram}
	mint := Account{Program: tokenProgram}
	destination := Account{Program: tokenProgram, Data: destData}

	// Same inputs, same verdicts as the hook path.
	require.NoError(ValidateTransferFallback(tokenProgram, source, mint, destination, 1_000_000_000, cfg))

	err := ValidateTransferFallback(tokenProgram, source, mint, destination, 1_000_000_001, cfg)
	require.ErrorIs(err, ErrWalletCapExceeded)
}

func TestValidateTransferFallbackMalformedDestination(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	tokenProgram := ids.GenerateTestID()

	destination := Account{Program: tokenProgram, Data: []byte{0x01, 0x02}}
	err := ValidateTransferFallback(tokenProgram,
		Account{Program: tokenProgram}, Account{Program: tokenProgram}, destination, 1, cfg)
	require.ErrorIs(err, ErrInvalidRecord)
}
