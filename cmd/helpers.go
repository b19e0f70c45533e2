package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/easylandingweb/easylanding/internal/config"
	"github.com/easylandingweb/easylanding/internal/db"
	"github.com/easylandingweb/easylanding/internal/drafts"
	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `easylanding init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Using config %s (data in %s)\n", cfgFile, cfg.DataDir)
	}
	return cfg, nil
}

// stores bundles the database-backed stores used by most commands.
type stores struct {
	db      *db.DB
	drafts  *drafts.Store
	history *history.Store
}

func (s *stores) Close() error {
	return s.db.Close()
}

// openStores opens the local database named by cfg.
func openStores(cfg *config.Config) (*stores, error) {
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &stores{
		db:      database,
		drafts:  drafts.NewStore(database),
		history: history.NewStore(database),
	}, nil
}

// draftKey returns the key flag value, or the configured default.
func draftKey(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.DraftKey
}

// pageOptions maps config to assembler options.
func pageOptions(cfg *config.Config) page.Options {
	return page.Options{StrictURLs: cfg.StrictURLs}
}

// newRecord returns an empty record using the configured default template.
func newRecord(cfg *config.Config) restaurant.Record {
	rec := restaurant.New()
	rec.Template = cfg.DefaultTemplate
	return rec
}

// printWarnings reports soft issues with a record on stderr.
func printWarnings(rec restaurant.Record) {
	for _, w := range rec.Warnings() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}

// logHistory records an action, reporting failures without aborting.
func logHistory(ctx context.Context, s *stores, action history.Action, key string, rec restaurant.Record, html, target string) {
	if err := s.history.LogPage(ctx, action, key, rec, html, target); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record history: %v\n", err)
	}
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
