// Package catalogue holds the immutable set of listings loaded at start-up.
package catalogue

import "github.com/pricecheck/backend/internal/domain"

// Store is a frozen, ordered catalogue of listings. It is safe for
// concurrent use because nothing mutates it after New returns.
type Store struct {
	listings []domain.Listing
}

// New copies listings into a new Store so later changes to the
// caller's slice are not observed
func New(listings []domain.Listing) *Store {
	frozen := make([]domain.Listing, len(listings))
	copy(frozen, listings)
	return &Store{listings: frozen}
}

// Listings returns the catalogue in load order. The returned slice is a
// copy; callers may reorder it freely.
func (s *Store) Listings() []domain.Listing {
	out := make([]domain.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// Len returns the number of listings
func (s *Store) Len() int {
	return len(s.listings)
}
