package commands

import (
	"github.com/spf13/cobra"

	"unrealctl/internal/app"
	"unrealctl/internal/config"
)

var (
	configPath string
	verbose    bool
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "unrealctl",
		Short:        "Deploy the Unreal contract suite to NEAR",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(app.Options{ConfigPath: configPath, Verbose: verbose})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "optional override file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log captured tool output")

	root.AddCommand(
		loginCmd(),
		createSubaccountsCmd(),
		deployCmd(),
		stateCmd(),
		accountsCmd(),
		versionCmd(),
	)
	return root.Execute()
}
