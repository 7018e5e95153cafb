package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Metadata describes an ingested document
type Metadata struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source,omitempty"`   // File path or URL
	MIMEType  string    `json:"mime_type"`          // Sniffed type of the raw input
	Platform  string    `json:"platform,omitempty"` // Job board platform for URL sources
	Timestamp string    `json:"timestamp"`          // RFC3339 format
	Hash      string    `json:"hash"`               // SHA256 hex digest of the cleaned text
	Chars     int       `json:"chars"`
}

// NewMetadata creates Metadata for cleaned text with a fresh ID and the current timestamp
func NewMetadata(content, source, mimeType string) *Metadata {
	return &Metadata{
		ID:        uuid.New(),
		Source:    source,
		MIMEType:  mimeType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Chars:     utf8.RuneCountInString(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
