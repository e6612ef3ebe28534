// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package assetcmd

import (
	"fmt"

	"github.com/luxfi/capgate/pkg/configstore"
	"github.com/luxfi/capgate/pkg/gate"
	"github.com/luxfi/capgate/pkg/governance"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

var (
	exemptStr    string
	authorityStr string
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [mint]",
		Short: "Create the config record for an asset",
		Long: `Creates the governed config record for the given mint with the default
wallet cap. The exempt wallet and governance authority are fixed at creation;
only the authority can later change the cap, and only through the timelock.
A mint can be initialized exactly once.`,
		RunE: initAsset,
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&exemptStr, "exempt", "", "wallet exempt from the cap check")
	cmd.Flags().StringVar(&authorityStr, "authority", "", "governance authority wallet")
	_ = cmd.MarkFlagRequired("exempt")
	_ = cmd.MarkFlagRequired("authority")
	return cmd
}

func initAsset(_ *cobra.Command, args []string) error {
	mint, err := ids.FromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid mint %q: %w", args[0], err)
	}
	exempt, err := ids.FromString(exemptStr)
	if err != nil {
		return fmt.Errorf("invalid exempt wallet %q: %w", exemptStr, err)
	}
	authority, err := ids.FromString(authorityStr)
	if err != nil {
		return fmt.Errorf("invalid authority %q: %w", authorityStr, err)
	}

	db, err := app.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := governance.New(
		configstore.New(db),
		governance.WithEmitter(gate.NewLogEmitter(app.Log)),
	)
	cfg, err := engine.Initialize(mint, exempt, authority)
	if err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Config initialized for mint %s", mint)
	ux.Logger.PrintToUser("Record address: %s", configstore.ConfigAddress(mint))
	ux.Logger.PrintToUser("Wallet cap:     %d", cfg.WalletCapRaw)
	return nil
}
