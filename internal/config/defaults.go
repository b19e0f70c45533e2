package config

import "path/filepath"

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".easylanding.yml"

// DefaultIncludes match record files for batch generation by default.
var DefaultIncludes = []string{
	"**/*.json",
	"**/*.yaml",
	"**/*.yml",
}

// DefaultExcludes are glob patterns skipped by batch generation by default.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	".easylanding/**",
	"site/**",
	"package.json",
	"package-lock.json",
	"tsconfig*.json",
	DefaultPath,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:       "site",
		Filename:        "index.html",
		DataDir:         ".easylanding",
		DraftKey:        "restaurant-data",
		DefaultTemplate: "simple",
		StrictURLs:      false,
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
		},
		Batch: BatchConfig{
			Include: append([]string(nil), DefaultIncludes...),
			Exclude: append([]string(nil), DefaultExcludes...),
		},
		S3: S3Config{
			Region: "us-east-1",
			Prefix: "sites",
		},
	}
}

// DBPath is the SQLite file holding drafts and history.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "easylanding.db")
}

// OutputPath is where a generated page is written.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.Filename)
}
