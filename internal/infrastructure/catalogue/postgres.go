package catalogue

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pricecheck/backend/internal/domain"
)

const selectListings = `
	SELECT
		COALESCE(id::text, ''),
		product_name,
		COALESCE(product_url, ''),
		COALESCE(product_image_url, ''),
		COALESCE(price, ''),
		category,
		retailer
	FROM listings
	ORDER BY position, id`

// PostgresSource loads the catalogue from a listings table. The pool is
// opened for the single start-up read and closed afterwards.
type PostgresSource struct {
	databaseURL string
}

// NewPostgresSource creates a catalogue source for databaseURL
func NewPostgresSource(databaseURL string) *PostgresSource {
	return &PostgresSource{databaseURL: databaseURL}
}

// Load reads every row of the listings table in catalogue order
func (s *PostgresSource) Load(ctx context.Context) ([]domain.Listing, error) {
	pool, err := pgxpool.New(ctx, s.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogueUnavailable, err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, selectListings)
	if err != nil {
		return nil, fmt.Errorf("%w: query listings: %v", domain.ErrCatalogueUnavailable, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (record, error) {
		var (
			r  record
			id string
		)
		if err := row.Scan(&id, &r.ProductName, &r.ProductURL, &r.ProductImageURL, &r.Price, &r.Category, &r.Retailer); err != nil {
			return record{}, err
		}
		if id != "" {
			r.ID = &objectID{OID: id}
		}
		return r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan listings: %w", err)
	}

	log.Printf("[CATALOGUE] Loaded %d listings from postgres", len(records))
	return mapListings(records), nil
}
