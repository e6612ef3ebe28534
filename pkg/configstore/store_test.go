// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configstore

import (
	"testing"

	"github.com/luxfi/capgate/pkg/constants"
	"github.com/luxfi/capgate/pkg/gate"
	"github.com/luxfi/database/badgerdb"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := badgerdb.New(t.TempDir(), nil, "", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return New(db)
}

func TestDeriveAddressDeterministic(t *testing.T) {
	require := require.New(t)
	mint := ids.GenerateTestID()

	require.Equal(ConfigAddress(mint), ConfigAddress(mint))
	require.NotEqual(ConfigAddress(mint), ExtraAccountMetasAddress(mint))
	require.NotEqual(ConfigAddress(mint), ConfigAddress(ids.GenerateTestID()))
	require.NotEqual(ids.Empty, ConfigAddress(mint))
}

func TestDeriveAddressLabelSeparation(t *testing.T) {
	require := require.New(t)
	mint := ids.GenerateTestID()

	// Distinct labels must never alias the same record slot.
	require.NotEqual(
		DeriveAddress(constants.ConfigSeed, mint),
		DeriveAddress(constants.ExtraAccountMetasSeed, mint),
	)
}

func TestInitializeConfigOnce(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	mint := ids.GenerateTestID()
	cfg := gate.NewConfig(ids.GenerateTestID(), ids.GenerateTestID())

	require.NoError(store.InitializeConfig(mint, cfg))

	err := store.InitializeConfig(mint, cfg)
	require.ErrorIs(err, gate.ErrAlreadyInitialized)

	got, err := store.GetConfig(mint)
	require.NoError(err)
	require.Equal(cfg, got)
}

func TestGetConfigMissing(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)

	_, err := store.GetConfig(ids.GenerateTestID())
	require.ErrorIs(err, gate.ErrConfigNotFound)
}

func TestPutConfigRequiresExisting(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	mint := ids.GenerateTestID()
	cfg := gate.NewConfig(ids.GenerateTestID(), ids.GenerateTestID())

	err := store.PutConfig(mint, cfg)
	require.ErrorIs(err, gate.ErrConfigNotFound)

	require.NoError(store.InitializeConfig(mint, cfg))
	cfg.WalletCapRaw = 7_000_000_000
	require.NoError(store.PutConfig(mint, cfg))

	got, err := store.GetConfig(mint)
	require.NoError(err)
	require.Equal(uint64(7_000_000_000), got.WalletCapRaw)
}

func TestRecordsAreIndependentPerMint(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	mintA := ids.GenerateTestID()
	mintB := ids.GenerateTestID()

	cfgA := gate.NewConfig(ids.GenerateTestID(), ids.GenerateTestID())
	cfgB := gate.NewConfig(ids.GenerateTestID(), ids.GenerateTestID())
	cfgB.WalletCapRaw = 9_000_000_000

	require.NoError(store.InitializeConfig(mintA, cfgA))
	require.NoError(store.InitializeConfig(mintB, cfgB))

	gotA, err := store.GetConfig(mintA)
	require.NoError(err)
	gotB, err := store.GetConfig(mintB)
	require.NoError(err)
	require.Equal(cfgA, gotA)
	require.Equal(cfgB, gotB)
}

func TestInitRecordOnce(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	addr := ids.GenerateTestID()

	require.NoError(store.InitRecord(addr, []byte("payload")))

	err := store.InitRecord(addr, []byte("other"))
	require.ErrorIs(err, gate.ErrAlreadyInitialized)

	got, err := store.GetRecord(addr)
	require.NoError(err)
	require.Equal([]byte("payload"), got)
}
