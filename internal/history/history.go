// Package history records every page generated, previewed, downloaded,
// exported, imported or published, so a user can see what went out and when.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Action describes what was done with a page.
type Action string

const (
	ActionGenerate Action = "generate"
	ActionPreview  Action = "preview"
	ActionDownload Action = "download"
	ActionExport   Action = "export"
	ActionImport   Action = "import"
	ActionPublish  Action = "publish"
)

// Mode records which branch of the style resolver produced the page.
type Mode string

const (
	ModeTemplate Mode = "template"
	ModeAI       Mode = "ai"
)

// Entry is a single history record.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Action     Action    `json:"action"`
	DraftKey   string    `json:"draft_key"`
	Restaurant string    `json:"restaurant"`
	Mode       Mode      `json:"mode"`
	Template   string    `json:"template"`
	SizeBytes  int       `json:"size_bytes"`
	SHA256     string    `json:"sha256"`
	// Target is the file path or URL the page went to, if any.
	Target string `json:"target"`
}

// Checksum returns the hex SHA-256 of a generated page.
func Checksum(html string) string {
	sum := sha256.Sum256([]byte(html))
	return hex.EncodeToString(sum[:])
}

// ModeFor maps the AI toggle of a record to a Mode.
func ModeFor(aiEnabled bool) Mode {
	if aiEnabled {
		return ModeAI
	}
	return ModeTemplate
}
