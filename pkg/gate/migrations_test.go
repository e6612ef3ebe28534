// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMigrationRejectsNonIncreasingTarget(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()

	require.ErrorIs(ApplyMigration(&cfg, cfg.Version), ErrInvalidMigrationVersion)
	require.ErrorIs(ApplyMigration(&cfg, 0), ErrInvalidMigrationVersion)
	require.Equal(uint8(1), cfg.Version)
}

func TestApplyMigrationRejectsUnknownVersion(t *testing.T) {
	require := require.New(t)
	cfg, _, _ := testConfig()

	require.ErrorIs(ApplyMigration(&cfg, LatestVersion+1), ErrUnsupportedVersion)
	require.Equal(uint8(1), cfg.Version)
}
