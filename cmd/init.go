package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ai-heroes/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize heroes configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the gallery and writes the config file (.heroes.yml unless --config is given).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
