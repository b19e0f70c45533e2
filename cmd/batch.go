package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/easylandingweb/easylanding/internal/batch"
	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/progress"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Generate a page for every record file under a directory",
	Long: `Finds record files (JSON or YAML) under dir using the batch include and
exclude globs from config, and writes each page to
output_dir/<record path without extension>/index.html, so paris/chez-marie.yaml
becomes output_dir/paris/chez-marie/index.html.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringSlice("include", nil, "include globs (override config)")
	batchCmd.Flags().StringSlice("exclude", nil, "extra exclude globs")
	batchCmd.Flags().String("out", "", "output directory (defaults to output_dir)")
	batchCmd.Flags().Bool("dry-run", false, "list what would be generated without writing")
	batchCmd.Flags().Bool("json", false, "print results as JSON")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	bcfg := batch.Config{
		RootDir:   root,
		Include:   cfg.Batch.Include,
		Exclude:   cfg.Batch.Exclude,
		OutputDir: cfg.OutputDir,
		Filename:  cfg.Filename,
		Options:   pageOptions(cfg),
	}
	if inc, _ := cmd.Flags().GetStringSlice("include"); len(inc) > 0 {
		bcfg.Include = inc
	}
	if exc, _ := cmd.Flags().GetStringSlice("exclude"); len(exc) > 0 {
		bcfg.Exclude = append(append([]string{}, bcfg.Exclude...), exc...)
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		bcfg.OutputDir = out
	}
	bcfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Keep the output tree out of the search when it lives under root.
	if rel, err := filepath.Rel(root, bcfg.OutputDir); err == nil && rel != "." && filepath.IsLocal(rel) {
		bcfg.Exclude = append(bcfg.Exclude, filepath.ToSlash(rel)+"/**")
	}

	var reporter progress.Reporter = progress.NewReporter()
	if jsonOutput {
		reporter = progress.Nop{}
	}

	results, err := batch.Run(ctx, bcfg, reporter)
	if err != nil {
		return err
	}

	var s *stores
	if !bcfg.DryRun {
		if s, err = openStores(cfg); err != nil {
			return err
		}
		defer s.Close()
	}

	for _, r := range results {
		if r.Err == nil && s != nil {
			logHistory(ctx, s, history.ActionGenerate, "", r.Record, r.HTML, r.Output)
		}
	}

	if jsonOutput {
		return printBatchJSON(results)
	}

	failed := batch.Failed(results)
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(os.Stderr, "  FAIL %s: %v\n", r.Source, r.Err)
		case bcfg.DryRun:
			fmt.Printf("  would write %s (%s)\n", r.Output, r.Name)
		case verbose:
			fmt.Printf("  %s -> %s (%d bytes)\n", r.Source, r.Output, r.Bytes)
		}
		if verbose {
			for _, w := range r.Warnings {
				fmt.Fprintf(os.Stderr, "    warning: %s\n", w)
			}
		}
	}

	fmt.Printf("%d page(s) generated, %d failed\n", len(results)-len(failed), len(failed))
	if len(failed) > 0 {
		return fmt.Errorf("%d record file(s) failed", len(failed))
	}
	return nil
}

type batchJSONResult struct {
	batch.Result
	Error string `json:"error,omitempty"`
}

func printBatchJSON(results []batch.Result) error {
	out := make([]batchJSONResult, 0, len(results))
	for _, r := range results {
		jr := batchJSONResult{Result: r}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
