package cmd

import (
	"os"

	"github.com/lazharichir/handscore/config"
	"github.com/lazharichir/handscore/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the handscore command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "handscore",
		Short:         "Classify five card poker hands",
		Long:          "handscore classifies five card poker hands into one of ten categories, from royal flush down to high card.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadLog()
			if err != nil {
				return err
			}
			logging.Init(cfg, os.Stderr)
			return nil
		},
	}

	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newExamplesCmd())
	rootCmd.AddCommand(newDealCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
