package catalogue

import (
	"log"
	"strings"

	"github.com/pricecheck/backend/internal/domain"
)

// objectID is the Mongo export form of a document id: {"$oid": "..."}
type objectID struct {
	OID string `json:"$oid"`
}

// record is one listing as written by the retailer scrapers
type record struct {
	ID              *objectID `json:"_id,omitempty"`
	ProductName     string    `json:"productName"`
	ProductURL      string    `json:"productURL"`
	ProductImageURL string    `json:"productImageURL"`
	Price           string    `json:"price"`
	Category        string    `json:"category"`
	Retailer        string    `json:"retailer"`
}

// MapToListing converts a scraped record to a domain Listing. Values are
// passed through untouched apart from trimming surrounding whitespace on
// the retailer name.
func MapToListing(r record) domain.Listing {
	var id string
	if r.ID != nil {
		id = r.ID.OID
	}

	return domain.Listing{
		ID:       id,
		Name:     r.ProductName,
		URL:      r.ProductURL,
		ImageURL: r.ProductImageURL,
		Price:    r.Price,
		Category: r.Category,
		Retailer: domain.Retailer(strings.TrimSpace(r.Retailer)),
	}
}

// mapListings converts records in order, logging each unknown retailer once
func mapListings(records []record) []domain.Listing {
	listings := make([]domain.Listing, 0, len(records))
	unknown := make(map[domain.Retailer]bool)

	for _, r := range records {
		listing := MapToListing(r)
		if !listing.Retailer.Valid() && !unknown[listing.Retailer] {
			unknown[listing.Retailer] = true
			log.Printf("[CATALOGUE] WARNING: unknown retailer %q (first seen on %q)", listing.Retailer, listing.Name)
		}
		listings = append(listings, listing)
	}

	return listings
}
