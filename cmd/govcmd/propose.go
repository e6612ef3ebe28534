// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package govcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/luxfi/capgate/pkg/governance"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/spf13/cobra"
)

func newProposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "propose [mint] [new-cap]",
		Short: "Propose a new wallet cap",
		Long: `Records a pending cap change. The new cap must be positive and at most
the hard maximum, and becomes executable only after the 48-hour timelock.
Only one proposal may be outstanding; cancel it first to replace it.`,
		RunE: propose,
		Args: cobra.ExactArgs(2),
	}
}

func propose(_ *cobra.Command, args []string) error {
	newCap, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid cap %q: %w", args[1], err)
	}
	return withEngine(args[0], func(engine *governance.Engine, mint ids.ID, signer ids.ID) error {
		update, err := engine.Propose(mint, signer, newCap)
		if err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Cap change proposed for mint %s", mint)
		ux.Logger.PrintToUser("New cap:       %d", update.NewCap)
		ux.Logger.PrintToUser("Executable at: %s", time.Unix(update.ExecutionTime, 0).UTC().Format(time.RFC3339))
		return nil
	})
}
