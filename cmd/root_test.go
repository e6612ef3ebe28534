// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmdHasExpectedSubcommands(t *testing.T) {
	require := require.New(t)
	rootCmd := NewRootCmd()

	expected := map[string]bool{
		AssetCmd:    false,
		GovCmd:      false,
		ValidateCmd: false,
	}
	for _, sub := range rootCmd.Commands() {
		if _, ok := expected[sub.Name()]; ok {
			expected[sub.Name()] = true
		}
	}
	for name, found := range expected {
		require.True(found, "missing subcommand %s", name)
	}
}

func TestAssetCmdSubcommands(t *testing.T) {
	require := require.New(t)
	rootCmd := NewRootCmd()

	assetCmd, _, err := rootCmd.Find([]string{AssetCmd})
	require.NoError(err)

	names := map[string]bool{}
	for _, sub := range assetCmd.Commands() {
		names[sub.Name()] = true
	}
	require.True(names["init"])
	require.True(names["resolver-init"])
	require.True(names["status"])
}

func TestGovCmdSubcommands(t *testing.T) {
	require := require.New(t)
	rootCmd := NewRootCmd()

	govCmd, _, err := rootCmd.Find([]string{GovCmd})
	require.NoError(err)

	names := map[string]bool{}
	for _, sub := range govCmd.Commands() {
		names[sub.Name()] = true
	}
	require.True(names["propose"])
	require.True(names["execute"])
	require.True(names["cancel"])
	require.True(names["rotate"])
	require.True(names["migrate"])
}
