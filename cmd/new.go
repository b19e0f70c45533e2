package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/drafts"
	"github.com/easylandingweb/easylanding/internal/form"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Fill in a restaurant record interactively",
	Long: `Prompts for every field of the restaurant record and saves it as a draft.
If the draft already exists its values are offered as defaults, so
running new again edits it.`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().String("key", "", "draft to create or edit (defaults to draft_key from config)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
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

	var rec restaurant.Record
	if d, err := s.drafts.Load(ctx, key); err == nil {
		rec = d.Record
		fmt.Printf("Editing draft %q\n\n", key)
	} else if errors.Is(err, drafts.ErrNotFound) {
		rec = newRecord(cfg)
		fmt.Printf("Creating draft %q\n\n", key)
	} else {
		return err
	}

	rec, err = form.Fill(form.Terminal{}, rec)
	if err != nil {
		if errors.Is(err, form.ErrAborted) {
			fmt.Println("Aborted, nothing saved.")
			return nil
		}
		return err
	}

	if _, err := s.drafts.Save(ctx, key, rec); err != nil {
		return err
	}
	printWarnings(rec)
	fmt.Printf("\nDraft %q saved. Run `easylanding generate --key %s` to build the page.\n", key, key)
	return nil
}
