// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package govcmd

import (
	"fmt"
	"strconv"

	"github.com/luxfi/capgate/pkg/governance"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [mint] [target-version]",
		Short: "Migrate the config record schema",
		Long: `Upgrades the stored config record to a newer schema version. The target
must be above the current version and known to this build.`,
		RunE: migrate,
		Args: cobra.ExactArgs(2),
	}
}

func migrate(_ *cobra.Command, args []string) error {
	target, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid target version %q: %w", args[1], err)
	}
	return withEngine(args[0], func(engine *governance.Engine, mint ids.ID, signer ids.ID) error {
		cfg, err := engine.Migrate(mint, signer, uint8(target))
		if err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Config migrated for mint %s", mint)
		ux.Logger.PrintToUser("Schema version: %d", cfg.Version)
		return nil
	})
}
