package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createSubaccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-subaccounts",
		Short: "Create the token and htlc subaccounts",
		Long: `Create the token subaccount and then the htlc subaccount under the
master account. Both must exist before their contracts can be deployed. If the
first creation fails the second is not attempted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Deployer.CreateSubaccounts(); err != nil {
				return err
			}
			set := appCtx.Deployer.Accounts()
			fmt.Printf("created %s and %s\n", set.Token, set.HTLC)
			return nil
		},
	}
}
