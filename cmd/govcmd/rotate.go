// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package govcmd

import (
	"fmt"

	"github.com/luxfi/capgate/pkg/governance"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

func newRotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate [mint] [new-authority]",
		Short: "Hand governance to a new authority",
		Long: `Replaces the governance authority, effective immediately; no timelock
applies. A pending cap proposal survives the rotation and can be executed or
canceled by the new authority.`,
		RunE: rotate,
		Args: cobra.ExactArgs(2),
	}
}

func rotate(_ *cobra.Command, args []string) error {
	newAuthority, err := ids.FromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid authority %q: %w", args[1], err)
	}
	return withEngine(args[0], func(engine *governance.Engine, mint ids.ID, signer ids.ID) error {
		cfg, err := engine.RotateAuthority(mint, signer, newAuthority)
		if err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Authority rotated for mint %s", mint)
		ux.Logger.PrintToUser("New authority: %s", cfg.GovernanceAuthority)
		return nil
	})
}
