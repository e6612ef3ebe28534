// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// AssetCmd is the asset command name
	AssetCmd = "asset"

	// GovCmd is the gov command name
	GovCmd = "gov"

	// ValidateCmd is the validate command name
	ValidateCmd = "validate"
)
