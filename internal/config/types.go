package config

// Config is the top-level easylanding configuration, corresponding to .easylanding.yml.
type Config struct {
	OutputDir       string       `yaml:"output_dir" koanf:"output_dir"`
	Filename        string       `yaml:"filename" koanf:"filename"`
	DataDir         string       `yaml:"data_dir" koanf:"data_dir"`
	DraftKey        string       `yaml:"draft_key" koanf:"draft_key"`
	DefaultTemplate string       `yaml:"default_template" koanf:"default_template"`
	StrictURLs      bool         `yaml:"strict_urls" koanf:"strict_urls"`
	Server          ServerConfig `yaml:"server" koanf:"server"`
	Batch           BatchConfig  `yaml:"batch" koanf:"batch"`
	S3              S3Config     `yaml:"s3" koanf:"s3"`
}

// ServerConfig holds settings for the preview HTTP server.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// BatchConfig selects record files for batch generation.
type BatchConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// S3Config points publish at an S3-compatible bucket. Leaving Bucket empty
// disables publishing.
type S3Config struct {
	Endpoint  string `yaml:"endpoint" koanf:"endpoint"`
	Region    string `yaml:"region" koanf:"region"`
	Bucket    string `yaml:"bucket" koanf:"bucket"`
	AccessKey string `yaml:"access_key" koanf:"access_key"`
	SecretKey string `yaml:"secret_key" koanf:"secret_key"`
	PublicURL string `yaml:"public_url" koanf:"public_url"`
	Prefix    string `yaml:"prefix" koanf:"prefix"`
}

// Enabled reports whether a bucket is configured.
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}
