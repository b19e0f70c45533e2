package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import record files as drafts",
	Long: `Loads JSON or YAML record files into the draft store. Files exported from
the web form load unchanged. With one file the draft key defaults to
draft_key from config; with several each file is stored under its base name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("key", "", "draft key (single file only)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	keyFlag, _ := cmd.Flags().GetString("key")
	if keyFlag != "" && len(args) > 1 {
		return fmt.Errorf("--key can only be used with a single file")
	}

	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, path := range args {
		rec, err := restaurant.LoadFile(path)
		if err != nil {
			return err
		}

		key := draftKey(cfg, keyFlag)
		if len(args) > 1 {
			key = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		if _, err := s.drafts.Save(ctx, key, rec); err != nil {
			return err
		}
		logHistory(ctx, s, history.ActionImport, key, rec, "", path)

		fmt.Printf("Imported %s as draft %q (%s)\n", path, key, displayName(rec))
		if verbose {
			printWarnings(rec)
		}
	}
	return nil
}

func displayName(rec restaurant.Record) string {
	if strings.TrimSpace(rec.Name) == "" {
		return "unnamed"
	}
	return rec.Name
}
