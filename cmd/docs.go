package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/guide"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Write the user guide as an HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if md, _ := cmd.Flags().GetBool("markdown"); md {
			fmt.Print(guide.Markdown())
			return nil
		}

		dir, _ := cmd.Flags().GetString("out")
		if dir == "" {
			dir = filepath.Join(cfg.OutputDir, "docs")
		}
		path, err := guide.Write(dir)
		if err != nil {
			return err
		}
		fmt.Printf("User guide written to %s\n", path)

		if open, _ := cmd.Flags().GetBool("open"); open {
			abs, err := filepath.Abs(path)
			if err == nil {
				openBrowser("file://" + filepath.ToSlash(abs))
			}
		}
		return nil
	},
}

func init() {
	docsCmd.Flags().String("out", "", "output directory (defaults to output_dir/docs)")
	docsCmd.Flags().Bool("markdown", false, "print the guide as markdown to stdout")
	docsCmd.Flags().Bool("open", false, "open the guide in a browser")
	rootCmd.AddCommand(docsCmd)
}
