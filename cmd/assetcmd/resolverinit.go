// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package assetcmd

import (
	"fmt"

	"github.com/luxfi/capgate/pkg/configstore"
	"github.com/luxfi/capgate/pkg/resolver"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

func newResolverInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolver-init [mint]",
		Short: "Create the resolver record for an asset",
		Long: `Publishes the extra-account metadata for the given mint so the hosting
runtime knows to pass the config record to every transfer validation. Written
once per mint.`,
		RunE: resolverInit,
		Args: cobra.ExactArgs(1),
	}
}

func resolverInit(_ *cobra.Command, args []string) error {
	mint, err := ids.FromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid mint %q: %w", args[0], err)
	}

	db, err := app.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := resolver.Init(configstore.New(db), mint); err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Resolver record initialized for mint %s", mint)
	ux.Logger.PrintToUser("Record address: %s", configstore.ExtraAccountMetasAddress(mint))
	return nil
}
