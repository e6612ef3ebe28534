// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package govcmd

import (
	"github.com/luxfi/capgate/pkg/governance"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

func newExecuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execute [mint]",
		Short: "Apply the pending cap change",
		Long: `Applies the pending cap change once its timelock has elapsed. Fails if
no proposal is outstanding or the timelock has not expired.`,
		RunE: execute,
		Args: cobra.ExactArgs(1),
	}
}

func execute(_ *cobra.Command, args []string) error {
	return withEngine(args[0], func(engine *governance.Engine, mint ids.ID, signer ids.ID) error {
		cfg, err := engine.Execute(mint, signer)
		if err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Cap updated for mint %s", mint)
		ux.Logger.PrintToUser("Wallet cap: %d", cfg.WalletCapRaw)
		return nil
	})
}
