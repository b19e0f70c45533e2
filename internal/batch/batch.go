// Package batch generates one landing page per record file found under a
// directory tree.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/progress"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

// Config controls Find and Run.
type Config struct {
	RootDir   string   // Directory searched for record files.
	Include   []string // Glob patterns; only matching files are used.
	Exclude   []string // Glob patterns; matching files and directories are skipped.
	OutputDir string   // Each page goes to OutputDir/<record base name>/Filename.
	Filename  string   // Defaults to page.Filename.
	Options   page.Options
	DryRun    bool // Resolve outputs and render without writing.
}

// Result describes one record file.
type Result struct {
	Source   string            `json:"source"`
	Output   string            `json:"output"`
	Name     string            `json:"name"`
	Bytes    int               `json:"bytes"`
	Warnings []string          `json:"warnings,omitempty"`
	Record   restaurant.Record `json:"-"`
	HTML     string            `json:"-"`
	Err      error             `json:"-"`
}

// Find returns the record files under cfg.RootDir, relative to it and sorted.
func Find(cfg Config) ([]string, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("batch: resolve root: %w", err)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil || relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if MatchesExclude(relPath, cfg.Exclude) || MatchesExclude(relPath+"/", cfg.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !MatchesInclude(relPath, cfg.Include) || MatchesExclude(relPath, cfg.Exclude) {
			return nil
		}
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: traversal: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// OutputFor returns where the page for a record file is written: the file's
// relative path without its extension, mirrored under OutputDir.
func OutputFor(cfg Config, relPath string) string {
	name := cfg.Filename
	if name == "" {
		name = page.Filename
	}
	rel := filepath.FromSlash(relPath)
	dir := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(cfg.OutputDir, dir, name)
}

// Run renders every file Find returns. A file that fails to load is reported
// in its Result and does not stop the run; only context cancellation and
// traversal errors are returned.
func Run(ctx context.Context, cfg Config, reporter progress.Reporter) ([]Result, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}

	files, err := Find(cfg)
	if err != nil {
		return nil, err
	}

	reporter.Start(len(files))
	defer reporter.Finish()

	seen := make(map[string]string, len(files))
	results := make([]Result, 0, len(files))

	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := Result{Source: rel, Output: OutputFor(cfg, rel)}
		if prev, dup := seen[res.Output]; dup {
			res.Err = fmt.Errorf("output %s already produced by %s", res.Output, prev)
		} else {
			seen[res.Output] = rel
			res.Err = renderOne(cfg, &res)
		}

		results = append(results, res)
		reporter.Update(i+1, rel)
	}

	return results, nil
}

func renderOne(cfg Config, res *Result) error {
	rec, err := restaurant.LoadFile(filepath.Join(cfg.RootDir, filepath.FromSlash(res.Source)))
	if err != nil {
		return err
	}

	html := page.Generate(rec, cfg.Options)
	res.Record = rec
	res.Name = rec.Name
	res.HTML = html
	res.Bytes = len(html)
	res.Warnings = rec.Warnings()

	if cfg.DryRun {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(res.Output), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(res.Output), err)
	}
	if err := os.WriteFile(res.Output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", res.Output, err)
	}
	return nil
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
