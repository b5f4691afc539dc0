package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Print the derived account set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := appCtx.Deployer.Accounts()
			fmt.Printf("main:  %s\ntoken: %s\nhtlc:  %s\n", set.Main, set.Token, set.HTLC)
			return nil
		},
	}
}
