package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.Filename != "index.html" {
		t.Errorf("expected default filename %q, got %q", "index.html", cfg.Filename)
	}
	if cfg.DraftKey != "restaurant-data" {
		t.Errorf("expected default draft_key %q, got %q", "restaurant-data", cfg.DraftKey)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.StrictURLs {
		t.Error("strict_urls should default to false")
	}
	if cfg.OutputPath() != filepath.Join("site", "index.html") {
		t.Errorf("unexpected output path %q", cfg.OutputPath())
	}
}

func TestDefaultConfigDoesNotAliasDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Batch.Include[0] = "changed"
	if DefaultIncludes[0] == "changed" {
		t.Error("DefaultConfig shares its include slice with DefaultIncludes")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.easylanding.yml")

	original := DefaultConfig()
	original.OutputDir = "public"
	original.DefaultTemplate = "rustic"
	original.StrictURLs = true
	original.Server.Port = 9000
	original.Batch.Include = []string{"restaurants/*.json"}
	original.S3.Bucket = "pages"
	original.S3.Endpoint = "https://nyc3.digitaloceanspaces.com"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.DefaultTemplate != original.DefaultTemplate {
		t.Errorf("default_template: got %q, want %q", loaded.DefaultTemplate, original.DefaultTemplate)
	}
	if !loaded.StrictURLs {
		t.Error("strict_urls: got false, want true")
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("server.port: got %d, want 9000", loaded.Server.Port)
	}
	if len(loaded.Batch.Include) != 1 || loaded.Batch.Include[0] != "restaurants/*.json" {
		t.Errorf("batch.include: got %v", loaded.Batch.Include)
	}
	if loaded.S3.Bucket != "pages" || loaded.S3.Endpoint != original.S3.Endpoint {
		t.Errorf("s3: got %+v", loaded.S3)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("output_dir: out\nserver:\n  allow_all_origins: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("output_dir: got %q, want out", cfg.OutputDir)
	}
	if !cfg.Server.AllowAllOrigins {
		t.Error("allow_all_origins not loaded")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port should keep default, got %d", cfg.Server.Port)
	}
	if cfg.Filename != "index.html" {
		t.Errorf("filename should keep default, got %q", cfg.Filename)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("EASYLANDING_OUTPUT_DIR", "from-env")
	t.Setenv("EASYLANDING_SERVER__PORT", "9191")
	t.Setenv("EASYLANDING_S3__BUCKET", "env-bucket")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "from-env" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "from-env")
	}
	if loaded.Server.Port != 9191 {
		t.Errorf("nested env override failed: got %d, want 9191", loaded.Server.Port)
	}
	if loaded.S3.Bucket != "env-bucket" {
		t.Errorf("s3 env override failed: got %q", loaded.S3.Bucket)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"empty filename", func(c *Config) { c.Filename = "" }},
		{"filename with path", func(c *Config) { c.Filename = "pages/index.html" }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"empty draft key", func(c *Config) { c.DraftKey = "" }},
		{"unknown template", func(c *Config) { c.DefaultTemplate = "baroque" }},
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"bucket without region", func(c *Config) { c.S3.Bucket = "b"; c.S3.Region = "" }},
		{"half credentials", func(c *Config) { c.S3.Bucket = "b"; c.S3.AccessKey = "AK" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" a/**, ,b.json ,")
	if len(got) != 2 || got[0] != "a/**" || got[1] != "b.json" {
		t.Errorf("splitAndTrim = %v", got)
	}
	if splitAndTrim("") != nil {
		t.Error("empty input should yield nil")
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"80", "8080", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "0", "70000"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}
