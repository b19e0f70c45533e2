package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List or delete saved drafts",
	RunE:  runDraftsList,
}

var draftsDeleteCmd = &cobra.Command{
	Use:   "delete <key>...",
	Short: "Delete drafts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDraftsDelete,
}

func init() {
	draftsCmd.AddCommand(draftsDeleteCmd)
	rootCmd.AddCommand(draftsCmd)
}

func runDraftsList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	list, err := s.drafts.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No drafts yet. Run `easylanding new` or `easylanding import <file>`.")
		return nil
	}

	fmt.Printf("%-24s %-30s %s\n", "KEY", "RESTAURANT", "UPDATED")
	for _, d := range list {
		name := d.Name
		if name == "" {
			name = "-"
		}
		marker := ""
		if d.Key == cfg.DraftKey {
			marker = " (default)"
		}
		fmt.Printf("%-24s %-30s %s%s\n", d.Key, name, d.UpdatedAt.Local().Format("2006-01-02 15:04"), marker)
	}
	return nil
}

func runDraftsDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, key := range args {
		if err := s.drafts.Delete(cmd.Context(), key); err != nil {
			return err
		}
		fmt.Printf("Deleted draft %q\n", key)
	}
	return nil
}
