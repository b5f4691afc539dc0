package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stateAll bool

// state [account-id]: show on-chain state, defaulting to the main account.
func stateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state [account-id]",
		Short: "Show the on-chain state of one or all accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if stateAll {
				if len(args) == 1 {
					return fmt.Errorf("--all cannot be combined with an account id")
				}
				// Best effort across the set: every account is queried even
				// if an earlier one fails.
				return appCtx.Deployer.AllStates()
			}
			acct := ""
			if len(args) == 1 {
				acct = args[0]
			}
			return appCtx.Deployer.State(acct)
		},
	}
	cmd.Flags().BoolVar(&stateAll, "all", false, "query main, token, and htlc")
	return cmd
}
