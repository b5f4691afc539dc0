package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deploy [target]: target is main, token, htlc, or an explicit account ID.
func deployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy [target]",
		Short: "Build, deploy, and initialize a contract",
		Long: `Build the contract, deploy it to the target account, and call its
initializer in one transaction. The target is "main", "token", "htlc", or an
explicit account ID; it defaults to the main account.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}

			switch target {
			case "", "main":
				if err := appCtx.Deployer.DeployMain(); err != nil {
					return err
				}
			case "token":
				if err := appCtx.Deployer.DeployToken(); err != nil {
					return err
				}
			case "htlc":
				if err := appCtx.Deployer.DeployHTLC(); err != nil {
					return err
				}
			default:
				if err := appCtx.Deployer.Deploy(target); err != nil {
					return err
				}
			}
			fmt.Println("deployed")
			return nil
		},
	}
}
