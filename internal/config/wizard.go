package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/easylandingweb/easylanding/internal/style"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to easylanding! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Default template.
	infos := style.Templates()
	items := make([]string, len(infos))
	for i, t := range infos {
		items[i] = fmt.Sprintf("%-8s %s", t.ID, t.Description)
	}
	templatePrompt := promptui.Select{
		Label: "Default template for new restaurants",
		Items: items,
	}
	idx, _, err := templatePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("template selection: %w", err)
	}
	cfg.DefaultTemplate = string(infos[idx].ID)

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for generated pages",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 3. URL strictness.
	strictPrompt := promptui.Select{
		Label: "URL handling",
		Items: []string{
			"lax    - insert URLs exactly as typed",
			"strict - drop URLs with unsafe schemes or quotes",
		},
	}
	strictIdx, _, err := strictPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("url handling: %w", err)
	}
	cfg.StrictURLs = strictIdx == 1

	// 4. Preview server port.
	portPrompt := promptui.Prompt{
		Label:    "Preview server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Optional publish bucket.
	bucketPrompt := promptui.Prompt{
		Label:   "S3 bucket for publishing (leave blank to skip)",
		Default: "",
	}
	if cfg.S3.Bucket, err = bucketPrompt.Run(); err != nil {
		return nil, fmt.Errorf("s3 bucket: %w", err)
	}
	if cfg.S3.Enabled() {
		endpointPrompt := promptui.Prompt{
			Label:   "S3 endpoint (blank for AWS)",
			Default: "",
		}
		if cfg.S3.Endpoint, err = endpointPrompt.Run(); err != nil {
			return nil, fmt.Errorf("s3 endpoint: %w", err)
		}
		if os.Getenv(EnvPrefix+"S3__ACCESS_KEY") == "" {
			fmt.Printf("\nNote: set %sS3__ACCESS_KEY and %sS3__SECRET_KEY (or put them in .env) before running easylanding publish.\n", EnvPrefix, EnvPrefix)
		}
	}

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra batch exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Batch.Exclude = append(cfg.Batch.Exclude, splitAndTrim(excludeStr)...)

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
