// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package govcmd

import (
	"fmt"

	"github.com/luxfi/capgate/pkg/application"
	"github.com/luxfi/capgate/pkg/configstore"
	"github.com/luxfi/capgate/pkg/gate"
	"github.com/luxfi/capgate/pkg/governance"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

var (
	app *application.Capgate

	signerStr string
)

func NewCmd(injectedApp *application.Capgate) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gov",
		Short: "Governance operations for a governed asset",
		Long: `Mutate the governed config of an asset: cap changes under the 48-hour
timelock, authority rotation, and schema migration. Every subcommand requires
--signer; the operation fails unless the signer matches the stored authority.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.PersistentFlags().StringVar(&signerStr, "signer", "", "governance authority signing the operation")

	cmd.AddCommand(newProposeCmd())
	cmd.AddCommand(newExecuteCmd())
	cmd.AddCommand(newCancelCmd())
	cmd.AddCommand(newRotateCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

// withEngine parses the common mint and signer arguments, opens the store and
// runs fn against a governance engine backed by it.
func withEngine(mintStr string, fn func(engine *governance.Engine, mint ids.ID, signer ids.ID) error) error {
	mint, err := ids.FromString(mintStr)
	if err != nil {
		return fmt.Errorf("invalid mint %q: %w", mintStr, err)
	}
	if signerStr == "" {
		return fmt.Errorf("--signer is required")
	}
	signer, err := ids.FromString(signerStr)
	if err != nil {
		return fmt.Errorf("invalid signer %q: %w", signerStr, err)
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
	return fn(engine, mint, signer)
}
