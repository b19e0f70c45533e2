package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/easylandingweb/easylanding/internal/style"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: EASYLANDING_SERVER__PORT sets server.port.
const EnvPrefix = "EASYLANDING_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (EASYLANDING_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: EASYLANDING_OUTPUT_DIR -> output_dir,
	// EASYLANDING_S3__BUCKET -> s3.bucket.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists from the file replace the defaults instead of overwriting them
	// element by element.
	if k.Exists("batch.include") {
		cfg.Batch.Include = nil
	}
	if k.Exists("batch.exclude") {
		cfg.Batch.Exclude = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Filename == "" {
		return fmt.Errorf("filename is required")
	}
	if strings.ContainsAny(c.Filename, `/\`) {
		return fmt.Errorf("filename %q must not contain a path separator", c.Filename)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.DraftKey == "" {
		return fmt.Errorf("draft_key is required")
	}
	if !style.IsTemplate(c.DefaultTemplate) {
		return fmt.Errorf("invalid default_template %q: must be one of %s", c.DefaultTemplate, templateList())
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.S3.Enabled() {
		if c.S3.Region == "" {
			return fmt.Errorf("s3.region is required when s3.bucket is set")
		}
		if (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
			return fmt.Errorf("s3.access_key and s3.secret_key must be set together")
		}
	}
	return nil
}

func templateList() string {
	var ids []string
	for _, t := range style.Templates() {
		ids = append(ids, string(t.ID))
	}
	return strings.Join(ids, ", ")
}
