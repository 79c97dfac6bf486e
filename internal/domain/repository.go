package domain

import "context"

// CatalogueSource loads the full set of listings once at start-up
type CatalogueSource interface {
	Load(ctx context.Context) ([]Listing, error)
}

// CatalogueReader gives read-only access to a loaded catalogue
type CatalogueReader interface {
	Listings() []Listing
	Len() int
}
