package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show generated, exported and published pages",
	RunE:  runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete history entries older than a duration",
	RunE:  runHistoryPrune,
}

func init() {
	historyCmd.Flags().String("key", "", "only entries for this draft")
	historyCmd.Flags().String("action", "", "only this action (generate, preview, download, export, import, publish)")
	historyCmd.Flags().Duration("since", 0, "only entries newer than this, e.g. 24h")
	historyCmd.Flags().Int("limit", 20, "maximum entries to show (0 for all)")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyPruneCmd.Flags().Duration("older-than", 90*24*time.Hour, "age of entries to delete")
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	filter := history.QueryFilter{}
	filter.DraftKey, _ = cmd.Flags().GetString("key")
	if a, _ := cmd.Flags().GetString("action"); a != "" {
		filter.Action = history.Action(a)
	}
	if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
		t := time.Now().Add(-since)
		filter.Since = &t
	}
	filter.Limit, _ = cmd.Flags().GetInt("limit")

	entries, err := s.history.Query(cmd.Context(), filter)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	for _, e := range entries {
		style := string(e.Mode)
		if e.Template != "" {
			style += ":" + e.Template
		}
		fmt.Printf("%s  %-8s %-18s %-24s %-16s %7d B", e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Action, e.DraftKey, e.Restaurant, style, e.SizeBytes)
		if e.Target != "" {
			fmt.Printf("  -> %s", e.Target)
		}
		fmt.Println()
		if verbose && e.SHA256 != "" {
			fmt.Printf("    sha256 %s\n", e.SHA256)
		}
	}
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	age, _ := cmd.Flags().GetDuration("older-than")
	n, err := s.history.DeleteBefore(cmd.Context(), time.Now().Add(-age))
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d history entries older than %s\n", n, age)
	return nil
}
