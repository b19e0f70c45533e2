package cmd

import (
	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize easylanding configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure easylanding for your project and writes a .easylanding.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
