// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestConfigRecordRoundTrip(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	cfg.Pending = SomePending(PendingCapUpdate{
		NewCap:        42_000_000_000,
		ProposedAt:    1_700_000_000,
		ExecutionTime: 1_700_172_800,
	})

	buf := MarshalConfig(cfg)
	require.Len(buf, ConfigRecordSize)
	require.Equal(TagConfig, buf[0])

	got, err := UnmarshalConfig(buf)
	require.NoError(err)
	require.Equal(cfg, got)
}

func TestConfigRecordNoPending(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()

	got, err := UnmarshalConfig(MarshalConfig(cfg))
	require.NoError(err)
	require.False(got.Pending.Present())
	require.Equal(cfg, got)
}

func TestUnmarshalConfigRejectsMalformed(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()
	good := MarshalConfig(cfg)

	_, err := UnmarshalConfig(good[:ConfigRecordSize-1])
	require.ErrorIs(err, ErrInvalidRecord)

	wrongTag := append([]byte(nil), good...)
	wrongTag[0] = TagExtraAccountMetas
	_, err = UnmarshalConfig(wrongTag)
	require.ErrorIs(err, ErrInvalidRecord)

	badFlag := append([]byte(nil), good...)
	badFlag[74] = 7
	_, err = UnmarshalConfig(badFlag)
	require.ErrorIs(err, ErrInvalidRecord)
}

func TestTokenAccountRoundTrip(t *testing.T) {
	require := require.New(t)
	acct := TokenAccount{Owner: ids.GenerateTestID(), Balance: 123_456_789}

	got, err := UnmarshalTokenAccount(MarshalTokenAccount(acct))
	require.NoError(err)
	require.Equal(acct, got)

	_, err = UnmarshalTokenAccount(make([]byte, TokenAccountSize+1))
	require.ErrorIs(err, ErrInvalidRecord)
}
