package catalogue

import (
	"fmt"

	"github.com/pricecheck/backend/internal/domain"
)

// Source types
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// NewSource picks the catalogue source for kind
func NewSource(kind, path, databaseURL string) (domain.CatalogueSource, error) {
	switch kind {
	case SourceFile:
		return NewFileSource(path), nil
	case SourcePostgres:
		return NewPostgresSource(databaseURL), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, kind)
}
