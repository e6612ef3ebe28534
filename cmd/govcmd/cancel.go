// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package govcmd

import (
	"github.com/luxfi/capgate/pkg/governance"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [mint]",
		Short: "Withdraw the pending cap change",
		Long:  `Clears the pending cap change without applying it. Allowed at any point of the timelock.`,
		RunE:  cancel,
		Args:  cobra.ExactArgs(1),
	}
}

func cancel(_ *cobra.Command, args []string) error {
	return withEngine(args[0], func(engine *governance.Engine, mint ids.ID, signer ids.ID) error {
		cfg, err := engine.Cancel(mint, signer)
		if err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Pending cap change canceled for mint %s", mint)
		ux.Logger.PrintToUser("Wallet cap remains: %d", cfg.WalletCapRaw)
		return nil
	})
}
