package usecase

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pricecheck/backend/internal/domain"
)

// AllCategories is the category sentinel that disables category filtering
const AllCategories = "All"

// Query defaults
const (
	defaultPageSize        = 12
	defaultSuggestionLimit = 20
)

// SortOption orders browse results
type SortOption string

const (
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
)

// ParseSortOption validates a sort option; empty means SortNameAsc
func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(s) {
	case "":
		return SortNameAsc, nil
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return SortOption(s), nil
	}
	return "", fmt.Errorf("%w: unknown sort option %q", domain.ErrInvalidRequest, s)
}

// QueryConfig holds configuration for the query service
type QueryConfig struct {
	PageSize           int
	SuggestionLimit    int
	EnableDebugLogging bool
}

// BrowseRequest describes one page of a filtered, sorted listing query
type BrowseRequest struct {
	Query     string
	Category  string
	Retailers []domain.Retailer
	Sort      SortOption
	Page      int
	PageSize  int
}

// BrowseResult is one page of listings plus paging metadata
type BrowseResult struct {
	Listings   []domain.Listing `json:"listings"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// QueryService answers free-text and category queries over the catalogue
type QueryService struct {
	catalogue          domain.CatalogueReader
	pageSize           int
	suggestionLimit    int
	enableDebugLogging bool
}

// NewQueryService creates a query service reading from catalogue
func NewQueryService(catalogue domain.CatalogueReader, config QueryConfig) *QueryService {
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	suggestionLimit := config.SuggestionLimit
	if suggestionLimit <= 0 {
		suggestionLimit = defaultSuggestionLimit
	}

	return &QueryService{
		catalogue:          catalogue,
		pageSize:           pageSize,
		suggestionLimit:    suggestionLimit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Search returns the listings matching query and category in catalogue order
func (s *QueryService) Search(query, category string) []domain.Listing {
	results := FilterListings(s.catalogue.Listings(), query, category)
	if s.enableDebugLogging {
		log.Printf("[QUERY] Search q=%q category=%q -> %d listings", query, category, len(results))
	}
	return results
}

// FilterListings keeps the listings whose name or category contains query
// (case-insensitively) and whose category equals category. An empty query
// matches everything; an empty or "All" category disables the filter.
func FilterListings(listings []domain.Listing, query, category string) []domain.Listing {
	q := strings.TrimSpace(foldCase(query))
	allCategories := category == "" || strings.EqualFold(category, AllCategories)

	results := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		matchesQuery := q == "" ||
			strings.Contains(foldCase(l.Name), q) ||
			strings.Contains(foldCase(l.Category), q)
		matchesCategory := allCategories || l.Category == category

		if matchesQuery && matchesCategory {
			results = append(results, l)
		}
	}
	return results
}

// Browse searches, filters by retailer, sorts and paginates
func (s *QueryService) Browse(req BrowseRequest) BrowseResult {
	results := s.Search(req.Query, req.Category)
	results = filterRetailers(results, req.Retailers)

	sortOption := req.Sort
	if sortOption == "" {
		sortOption = SortNameAsc
	}
	SortListings(results, sortOption)

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}

	// page and pageSize come from clients; only multiply once page is in range
	totalPages := len(results) / pageSize
	if len(results)%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	start := len(results)
	if page-1 < totalPages {
		start = (page - 1) * pageSize
	}
	end := len(results)
	if pageSize < end-start {
		end = start + pageSize
	}

	return BrowseResult{
		Listings:   results[start:end],
		Total:      len(results),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// filterRetailers keeps listings from any of retailers; an empty set keeps all
func filterRetailers(listings []domain.Listing, retailers []domain.Retailer) []domain.Listing {
	if len(retailers) == 0 {
		return listings
	}

	wanted := make(map[domain.Retailer]bool, len(retailers))
	for _, r := range retailers {
		wanted[r] = true
	}

	kept := listings[:0]
	for _, l := range listings {
		if wanted[l.Retailer] {
			kept = append(kept, l)
		}
	}
	return kept
}

// SortListings orders listings in place. Sorting is stable, so equal keys
// keep their catalogue order.
func SortListings(listings []domain.Listing, option SortOption) {
	switch option {
	case SortPriceAsc, SortPriceDesc:
		prices := make(map[string]float64, len(listings))
		for _, l := range listings {
			prices[l.Price] = ParsePrice(l.Price)
		}
		sort.SliceStable(listings, func(i, j int) bool {
			if option == SortPriceDesc {
				return prices[listings[i].Price] > prices[listings[j].Price]
			}
			return prices[listings[i].Price] < prices[listings[j].Price]
		})
	default:
		// Collators are not safe for concurrent use.
		c := collate.New(language.English)
		sort.SliceStable(listings, func(i, j int) bool {
			if option == SortNameDesc {
				return c.CompareString(listings[i].Name, listings[j].Name) > 0
			}
			return c.CompareString(listings[i].Name, listings[j].Name) < 0
		})
	}
}

// Categories returns the distinct categories of the catalogue, sorted
func (s *QueryService) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, l := range s.catalogue.Listings() {
		if !seen[l.Category] {
			seen[l.Category] = true
			categories = append(categories, l.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// UniqueListings returns the first listing for each normalized name within
// a category, in catalogue order
func (s *QueryService) UniqueListings() []domain.Listing {
	seen := make(map[string]bool)
	var unique []domain.Listing
	for _, l := range s.catalogue.Listings() {
		key := Normalize(l.Name) + signatureSeparator + l.Category
		if !seen[key] {
			seen[key] = true
			unique = append(unique, l)
		}
	}
	return unique
}

// Suggestions returns up to limit distinct product names for autocomplete.
// A non-positive limit uses the configured default.
func (s *QueryService) Suggestions(limit int) []string {
	if limit <= 0 {
		limit = s.suggestionLimit
	}

	seen := make(map[string]bool)
	suggestions := make([]string, 0, limit)
	for _, l := range s.UniqueListings() {
		if len(suggestions) == limit {
			break
		}
		if !seen[l.Name] {
			seen[l.Name] = true
			suggestions = append(suggestions, l.Name)
		}
	}
	return suggestions
}
