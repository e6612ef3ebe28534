// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package assetcmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/luxfi/capgate/pkg/configstore"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/ids"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [mint]",
		Short: "Show the stored config for an asset",
		Long:  `Prints the governed config record for the given mint, including any pending cap proposal.`,
		RunE:  assetStatus,
		Args:  cobra.ExactArgs(1),
	}
}

func assetStatus(_ *cobra.Command, args []string) error {
	mint, err := ids.FromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid mint %q: %w", args[0], err)
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

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")
	table.Append([]string{"Mint", mint.String()})
	table.Append([]string{"Record Address", configstore.ConfigAddress(mint).String()})
	table.Append([]string{"Schema Version", strconv.Itoa(int(cfg.Version))})
	table.Append([]string{"Wallet Cap", strconv.FormatUint(cfg.WalletCapRaw, 10)})
	table.Append([]string{"Exempt Wallet", cfg.ExemptWallet.String()})
	table.Append([]string{"Authority", cfg.GovernanceAuthority.String()})
	if update, ok := cfg.Pending.Get(); ok {
		table.Append([]string{"Pending Cap", strconv.FormatUint(update.NewCap, 10)})
		table.Append([]string{"Proposed At", time.Unix(update.ProposedAt, 0).UTC().Format(time.RFC3339)})
		table.Append([]string{"Executable At", time.Unix(update.ExecutionTime, 0).UTC().Format(time.RFC3339)})
	} else {
		table.Append([]string{"Pending Cap", "none"})
	}
	_ = table.Render()

	ux.Logger.PrintLineSeparator()
	return nil
}
