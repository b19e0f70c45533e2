package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a draft to a JSON or YAML file",
	Long: `Writes a draft as a record file. The format follows the file extension
(.yaml/.yml for YAML, anything else JSON). Without a file the record is
printed to stdout as JSON, or YAML with --format yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("key", "", "draft to export (defaults to draft_key from config)")
	exportCmd.Flags().String("format", "", "json or yaml (stdout only)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	keyFlag, _ := cmd.Flags().GetString("key")
	key := draftKey(cfg, keyFlag)

	d, err := s.drafts.Load(ctx, key)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		format := restaurant.FormatJSON
		if f, _ := cmd.Flags().GetString("format"); f != "" {
			format = restaurant.Format(f)
		}
		return restaurant.Encode(os.Stdout, d.Record, format)
	}

	path := args[0]
	if err := restaurant.SaveFile(path, d.Record); err != nil {
		return err
	}
	logHistory(ctx, s, history.ActionExport, key, d.Record, "", path)
	fmt.Printf("Exported draft %q to %s\n", key, path)
	return nil
}
