package restaurant

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format for records.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension. Anything that is not
// .yml or .yaml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a record. Fields missing from the input keep the values of New().
func Decode(r io.Reader, format Format) (Record, error) {
	rec := New()
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil && err != io.EOF {
			return Record{}, fmt.Errorf("decoding yaml record: %w", err)
		}
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("decoding json record: %w", err)
		}
	default:
		return Record{}, fmt.Errorf("unknown record format %q", format)
	}
	if rec.Template == "" {
		rec.Template = DefaultTemplate
	}
	return rec, nil
}

// Encode writes a record in the given format.
func Encode(w io.Writer, rec Record, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding yaml record: %w", err)
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding json record: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown record format %q", format)
	}
}

// LoadFile reads a record from disk, choosing the format by extension.
func LoadFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("opening record %s: %w", path, err)
	}
	defer f.Close()

	rec, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return Record{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return rec, nil
}

// SaveFile writes a record to disk, choosing the format by extension.
func SaveFile(path string, rec Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, rec, FormatFromPath(path)); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
