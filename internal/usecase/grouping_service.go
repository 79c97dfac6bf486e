package usecase

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/pricecheck/backend/internal/domain"
)

// signatureSeparator joins member names into a group signature; it never
// occurs in scraped product titles
const signatureSeparator = "\x00"

// Representative selects the member whose name and category a group displays
type Representative string

const (
	// RepresentativeFirst uses the first matched member in catalogue order
	RepresentativeFirst Representative = "first"
	// RepresentativeSmallestName uses the lexicographically smallest member
	// name, independent of catalogue order
	RepresentativeSmallestName Representative = "smallest-name"
)

// ParseRepresentative validates a representative strategy name
func ParseRepresentative(s string) (Representative, error) {
	switch Representative(s) {
	case "", RepresentativeFirst:
		return RepresentativeFirst, nil
	case RepresentativeSmallestName:
		return RepresentativeSmallestName, nil
	}
	return "", fmt.Errorf("%w: unknown representative %q", domain.ErrInvalidRequest, s)
}

// GroupConfig holds configuration for the grouping service
type GroupConfig struct {
	Representative     Representative
	EnableDebugLogging bool
}

// GroupingService partitions a catalogue into groups of matching listings
// and derives price statistics for each group
type GroupingService struct {
	matcher            *MatchingService
	representative     Representative
	enableDebugLogging bool
}

// NewGroupingService creates a grouping service on top of a matcher
func NewGroupingService(matcher *MatchingService, config GroupConfig) *GroupingService {
	representative := config.Representative
	if representative == "" {
		representative = RepresentativeFirst
	}

	return &GroupingService{
		matcher:            matcher,
		representative:     representative,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// GroupListings emits one group per distinct match neighbourhood, in the
// order each neighbourhood is first seen. Matching is not transitive, so
// overlapping neighbourhoods with different members surface as separate
// groups; only identical member sets are deduplicated.
func (s *GroupingService) GroupListings(catalogue []domain.Listing) []domain.ProductGroup {
	normalized := make([]string, len(catalogue))
	for i, l := range catalogue {
		normalized[i] = Normalize(l.Name)
	}

	seen := make(map[string]bool)
	var groups []domain.ProductGroup

	for _, listing := range catalogue {
		indices := s.matcher.matchIndices(listing, catalogue, normalized)

		members := make([]domain.Listing, 0, len(indices))
		for _, i := range indices {
			members = append(members, catalogue[i])
		}

		key := signature(members)
		if seen[key] {
			continue
		}
		seen[key] = true

		groups = append(groups, s.BuildGroup(members))
	}

	if s.enableDebugLogging {
		log.Printf("[GROUP] %d listings -> %d groups", len(catalogue), len(groups))
	}

	return groups
}

// CompareListing finds the first listing named exactly name and returns
// the group formed by its matches
func (s *GroupingService) CompareListing(name string, catalogue []domain.Listing) (*domain.ProductGroup, error) {
	for _, listing := range catalogue {
		if listing.Name != name {
			continue
		}
		group := s.BuildGroup(s.matcher.FindMatches(listing, catalogue))
		return &group, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrListingNotFound, name)
}

// BuildGroup materializes a ProductGroup from matched members. Retailers
// are sorted ascending by price, ties keeping member order.
func (s *GroupingService) BuildGroup(members []domain.Listing) domain.ProductGroup {
	group := domain.ProductGroup{
		Retailers: make([]domain.RetailerPrice, 0, len(members)),
	}
	if len(members) == 0 {
		return group
	}

	rep := s.pickRepresentative(members)
	group.ProductName = rep.Name
	group.Category = rep.Category

	for _, m := range members {
		group.Retailers = append(group.Retailers, domain.RetailerPrice{
			Retailer:    m.Retailer,
			Price:       ParsePrice(m.Price),
			PriceString: m.Price,
			URL:         m.URL,
			ImageURL:    m.ImageURL,
		})
	}
	sort.SliceStable(group.Retailers, func(i, j int) bool {
		return group.Retailers[i].Price < group.Retailers[j].Price
	})

	group.LowestPrice = group.Retailers[0].Price
	group.HighestPrice = group.Retailers[len(group.Retailers)-1].Price
	group.Savings = priceDifference(group.HighestPrice, group.LowestPrice)

	return group
}

func (s *GroupingService) pickRepresentative(members []domain.Listing) domain.Listing {
	rep := members[0]
	if s.representative == RepresentativeSmallestName {
		for _, m := range members[1:] {
			if m.Name < rep.Name || (m.Name == rep.Name && m.Category < rep.Category) {
				rep = m
			}
		}
	}
	return rep
}

// signature identifies a group by its sorted member names
func signature(members []domain.Listing) string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	sort.Strings(names)
	return strings.Join(names, signatureSeparator)
}
