package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pricecheck/backend/internal/domain"
)

// FileSource loads the catalogue from a JSON array of scraped records
type FileSource struct {
	path string
}

// NewFileSource creates a catalogue source reading path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the whole file
func (s *FileSource) Load(ctx context.Context) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogueUnavailable, err)
	}
	defer f.Close()

	r, err := NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCatalogueUnavailable, s.path, err)
	}

	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue %s: %w", s.path, err)
	}

	log.Printf("[CATALOGUE] Loaded %d listings from %s", len(records), s.path)
	return mapListings(records), nil
}
