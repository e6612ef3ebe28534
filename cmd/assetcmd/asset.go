// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package assetcmd

import (
	"fmt"

	"github.com/luxfi/capgate/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Capgate

func NewCmd(injectedApp *application.Capgate) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Provision and inspect per-asset records",
		Long: `Provision the governed config record and the resolver record for an
asset mint, and inspect the stored state.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newResolverInitCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}
