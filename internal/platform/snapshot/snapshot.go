// Package snapshot decodes metadata snapshot documents produced by an
// external page extractor.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lueurxax/social-preview/internal/core/domain"
)

// document is the wire form of an extracted page snapshot.
type document struct {
	URL      string            `json:"url"`
	Title    string            `json:"title"`
	Metadata map[string]string `json:"metadata"`
	Images   []string          `json:"images"`
}

// Decode reads a snapshot document and normalizes it for the card builder.
// Meta-tag names are lower-cased on ingest; the builder's candidate lists
// assume lower-cased keys, while third-party extractors may emit the
// original casing from the page.
func Decode(r io.Reader) (*domain.Snapshot, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	metadata := make(map[string]string, len(doc.Metadata))
	for name, content := range doc.Metadata {
		metadata[strings.ToLower(name)] = content
	}

	images := make([]domain.Image, 0, len(doc.Images))
	for _, src := range doc.Images {
		images = append(images, domain.Image{URL: src})
	}

	return &domain.Snapshot{
		URL:      doc.URL,
		Title:    doc.Title,
		Metadata: metadata,
		Images:   images,
	}, nil
}
