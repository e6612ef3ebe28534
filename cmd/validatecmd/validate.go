// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatecmd

import (
	"errors"
	"fmt"

	"github.com/luxfi/capgate/pkg/application"
	"github.com/luxfi/capgate/pkg/configstore"
	"github.com/luxfi/capgate/pkg/gate"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

var (
	app *application.Capgate

	ownerStr string
	balance  uint64
	amount   uint64
)

func NewCmd(injectedApp *application.Capgate) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [mint]",
		Short: "Run the transfer check against a stored config",
		Long: `Runs the wallet-cap check for a hypothetical transfer: given the
destination owner, its current balance, and the transfer amount, reports
whether the transfer would be accepted under the stored config for the mint.
The command exits non-zero when the transfer would be rejected.`,
		RunE: validateTransfer,
		Args: cobra.ExactArgs(1),
	}
	app = injectedApp
	cmd.Flags().StringVar(&ownerStr, "owner", "", "destination wallet owner")
	cmd.Flags().Uint64Var(&balance, "balance", 0, "destination balance before the transfer, in raw units")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "transfer amount in raw units")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func validateTransfer(_ *cobra.Command, args []string) error {
	mint, err := ids.FromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid mint %q: %w", args[0], err)
	}
	owner, err := ids.FromString(ownerStr)
	if err != nil {
		return fmt.Errorf("invalid owner %q: %w", ownerStr, err)
	}

	db, err := app.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cfg, err := configstore.New(db).GetConfig(mint)
	if err != nil {
		return err
	}

	if err := gate.CheckTransfer(cfg, owner, balance, amount); err != nil {
		if errors.Is(err, gate.ErrWalletCapExceeded) {
			ux.Logger.RedXToUser("Transfer rejected: %s", err)
		}
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Transfer accepted under cap %d", cfg.WalletCapRaw)
	return nil
}
