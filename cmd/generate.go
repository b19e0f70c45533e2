package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/restaurant"
	"github.com/easylandingweb/easylanding/internal/style"
)

var generateCmd = &cobra.Command{
	Use:   "generate [record-file]",
	Short: "Generate the landing page for a record",
	Long: `Renders a restaurant record to a self-contained index.html.

The record comes from a JSON or YAML file when one is given, otherwise
from the saved draft (--key, default from config). The page is written
to output_dir/filename unless --out or --stdout is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("key", "", "draft to render (defaults to draft_key from config)")
	generateCmd.Flags().String("out", "", "output file (defaults to output_dir/filename)")
	generateCmd.Flags().Bool("stdout", false, "write the page to stdout instead of a file")
	generateCmd.Flags().String("template", "", "override the record's template")
	generateCmd.Flags().Bool("dark", false, "force the dark variant of the template")
	generateCmd.Flags().String("ai", "", "style from this description instead of a template")
	generateCmd.Flags().Bool("strict-urls", false, "drop URLs with unsafe schemes or characters")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
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
	if len(args) == 1 {
		if rec, err = restaurant.LoadFile(args[0]); err != nil {
			return err
		}
		// A file is only tied to a draft when --key says so.
		key = keyFlag
	} else {
		d, err := s.drafts.Load(ctx, key)
		if err != nil {
			return fmt.Errorf("loading draft: %w\nRun `easylanding new` or `easylanding import` first", err)
		}
		rec = d.Record
	}

	if t, _ := cmd.Flags().GetString("template"); t != "" {
		if !style.IsTemplate(t) {
			return fmt.Errorf("unknown template %q", t)
		}
		rec.Template = t
		rec.AIEnabled = false
	}
	if cmd.Flags().Changed("dark") {
		rec.DarkMode, _ = cmd.Flags().GetBool("dark")
	}
	if desc, _ := cmd.Flags().GetString("ai"); desc != "" {
		rec.AIEnabled = true
		rec.Customization = desc
	}

	opts := pageOptions(cfg)
	if cmd.Flags().Changed("strict-urls") {
		opts.StrictURLs, _ = cmd.Flags().GetBool("strict-urls")
	}

	printWarnings(rec)
	html := page.Generate(rec, opts)

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		fmt.Print(html)
		logHistory(ctx, s, history.ActionGenerate, key, rec, html, "stdout")
		return nil
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.OutputPath()
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	logHistory(ctx, s, history.ActionGenerate, key, rec, html, out)

	mode := "template " + string(style.ParseTemplateID(rec.Template))
	if rec.AIEnabled {
		mode = "AI customization"
	}
	fmt.Printf("Generated %s (%d bytes, %s)\n", out, len(html), mode)
	return nil
}
