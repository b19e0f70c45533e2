package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "easylanding",
	Short: "Generate restaurant landing pages",
	Long: `EasyLanding turns a restaurant record (name, tagline, photos, address,
map, phone, opening hours, social links) into a single self-contained
index.html. Pick a template or describe the look you want and let the
keyword-based AI customization style the page.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is normal; anything else is worth a note.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) && verbose {
			fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
