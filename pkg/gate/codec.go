// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/ids"
)

// Stored records carry a one-byte type tag so external readers can identify
// a record's schema before parsing it.
const (
	TagConfig            byte = 0xc1
	TagExtraAccountMetas byte = 0xe1
)

// ConfigRecordSize is the fixed serialized size of a Config record:
// tag + version + exempt wallet + cap + authority + pending flag + pending fields.
const ConfigRecordSize = 1 + 1 + 32 + 8 + 32 + 1 + 8 + 8 + 8

// TokenAccountSize is the serialized size of a token account snapshot as
// handed to the fallback calling convention: owner wallet + balance.
const TokenAccountSize = 32 + 8

// MarshalConfig serializes cfg into the fixed on-disk layout.
func MarshalConfig(cfg Config) []byte {
	buf := make([]byte, ConfigRecordSize)
	buf[0] = TagConfig
	buf[1] = cfg.Version
	copy(buf[2:34], cfg.ExemptWallet[:])
	binary.BigEndian.PutUint64(buf[34:42], cfg.WalletCapRaw)
	copy(buf[42:74], cfg.GovernanceAuthority[:])
	if update, ok := cfg.Pending.Get(); ok {
		buf[74] = 1
		binary.BigEndian.PutUint64(buf[75:83], update.NewCap)
		binary.BigEndian.PutUint64(buf[83:91], uint64(update.ProposedAt))
		binary.BigEndian.PutUint64(buf[91:99], uint64(update.ExecutionTime))
	}
	return buf
}

// UnmarshalConfig parses a Config record, rejecting records with the wrong
// tag, length, or pending flag.
func UnmarshalConfig(buf []byte) (Config, error) {
	if len(buf) != ConfigRecordSize {
		return Config{}, fmt.Errorf("%w: config record is %d bytes, want %d", ErrInvalidRecord, len(buf), ConfigRecordSize)
	}
	if buf[0] != TagConfig {
		return Config{}, fmt.Errorf("%w: unexpected record tag 0x%02x", ErrInvalidRecord, buf[0])
	}
	cfg := Config{
		Version:      buf[1],
		WalletCapRaw: binary.BigEndian.Uint64(buf[34:42]),
	}
	copy(cfg.ExemptWallet[:], buf[2:34])
	copy(cfg.GovernanceAuthority[:], buf[42:74])
	switch buf[74] {
	case 0:
	case 1:
		cfg.Pending = SomePending(PendingCapUpdate{
			NewCap:        binary.BigEndian.Uint64(buf[75:83]),
			ProposedAt:    int64(binary.BigEndian.Uint64(buf[83:91])),
			ExecutionTime: int64(binary.BigEndian.Uint64(buf[91:99])),
		})
	default:
		return Config{}, fmt.Errorf("%w: invalid pending flag %d", ErrInvalidRecord, buf[74])
	}
	return cfg, nil
}

// TokenAccount is a snapshot of a token holding as seen by the validation
// engine: the wallet that owns it and its resting balance.
type TokenAccount struct {
	Owner   ids.ID
	Balance uint64
}

// MarshalTokenAccount serializes a token account snapshot for the fallback
// calling convention.
func MarshalTokenAccount(acct TokenAccount) []byte {
	buf := make([]byte, TokenAccountSize)
	copy(buf[0:32], acct.Owner[:])
	binary.BigEndian.PutUint64(buf[32:40], acct.Balance)
	return buf
}

// UnmarshalTokenAccount parses a serialized token account snapshot.
func UnmarshalTokenAccount(buf []byte) (TokenAccount, error) {
	if len(buf) != TokenAccountSize {
		return TokenAccount{}, fmt.Errorf("%w: token account is %d bytes, want %d", ErrInvalidRecord, len(buf), TokenAccountSize)
	}
	acct := TokenAccount{
		Balance: binary.BigEndian.Uint64(buf[32:40]),
	}
	copy(acct.Owner[:], buf[0:32])
	return acct, nil
}
