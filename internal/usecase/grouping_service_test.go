package usecase

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricecheck/backend/internal/domain"
)

func newGroupingService(match MatchConfig, group GroupConfig) *GroupingService {
	return NewGroupingService(NewMatchingService(match), group)
}

func TestParseRepresentative(t *testing.T) {
	got, err := ParseRepresentative("")
	require.NoError(t, err)
	assert.Equal(t, RepresentativeFirst, got)

	got, err = ParseRepresentative("smallest-name")
	require.NoError(t, err)
	assert.Equal(t, RepresentativeSmallestName, got)

	_, err = ParseRepresentative("random")
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestGroupListingsInvariants(t *testing.T) {
	svc := newGroupingService(MatchConfig{}, GroupConfig{})
	groups := svc.GroupListings(groceryCatalogue())
	require.NotEmpty(t, groups)

	for _, g := range groups {
		require.NotEmpty(t, g.Retailers, "group %q has no members", g.ProductName)
		assert.GreaterOrEqual(t, g.Savings, 0.0)
		assert.InDelta(t, g.HighestPrice-g.LowestPrice, g.Savings, 1e-9)
		assert.True(t, sort.SliceIsSorted(g.Retailers, func(i, j int) bool {
			return g.Retailers[i].Price < g.Retailers[j].Price
		}), "retailers of %q not sorted by price", g.ProductName)
		assert.Equal(t, g.Retailers[0].Price, g.LowestPrice)
		assert.Equal(t, g.Retailers[len(g.Retailers)-1].Price, g.HighestPrice)
	}
}

func TestGroupListingsDeduplicatesIdenticalNeighbourhoods(t *testing.T) {
	svc := newGroupingService(MatchConfig{}, GroupConfig{})
	catalogue := groceryCatalogue()
	groups := svc.GroupListings(catalogue)

	seen := make(map[string]bool)
	for _, g := range groups {
		// Prices are unique in this catalogue, so they identify members.
		members := make([]domain.Listing, len(g.Retailers))
		for i, r := range g.Retailers {
			members[i] = domain.Listing{Name: string(r.Retailer) + " " + r.PriceString}
		}
		key := signature(members)
		assert.False(t, seen[key], "duplicate group for %q", g.ProductName)
		seen[key] = true
	}

	// The two Albany listings match each other, so they form a single group.
	var bread []domain.ProductGroup
	for _, g := range groups {
		if g.Category == "Bakery" {
			bread = append(bread, g)
		}
	}
	require.Len(t, bread, 1)
	assert.Equal(t, "Albany Superior White Bread 700g", bread[0].ProductName)
	assert.Equal(t, 17.49, bread[0].LowestPrice)
	assert.Equal(t, 18.99, bread[0].HighestPrice)
	assert.Equal(t, 1.5, bread[0].Savings)
}

func TestGroupListingsKeepsOverlappingNeighbourhoods(t *testing.T) {
	svc := newGroupingService(MatchConfig{}, GroupConfig{})
	groups := svc.GroupListings(groceryCatalogue())

	var dairy []domain.ProductGroup
	for _, g := range groups {
		if g.Category == "Dairy" {
			dairy = append(dairy, g)
		}
	}

	// The Woolworths and low fat listings do not match each other, so each
	// of their neighbourhoods differs from the full cream one.
	require.Len(t, dairy, 3)
	assert.Len(t, dairy[0].Retailers, 4)
	assert.Equal(t, "Clover Full Cream Fresh Milk 2L", dairy[0].ProductName)
}

func TestGroupListingsColaScenario(t *testing.T) {
	t.Run("keyword required", func(t *testing.T) {
		svc := newGroupingService(MatchConfig{RequireKeyword: true}, GroupConfig{})
		groups := svc.GroupListings(colaCatalogue())

		var cola, pepsi *domain.ProductGroup
		for i := range groups {
			g := &groups[i]
			switch {
			case len(g.Retailers) == 2:
				cola = g
			case g.ProductName == "Pepsi 2L":
				pepsi = g
			}
		}

		require.NotNil(t, cola, "expected a group with both Coca-Cola listings")
		assert.Equal(t, domain.RetailerCheckers, cola.Retailers[0].Retailer)
		assert.Equal(t, domain.RetailerPickNPay, cola.Retailers[1].Retailer)
		assert.Equal(t, 24.50, cola.LowestPrice)
		assert.Equal(t, 25.99, cola.HighestPrice)
		assert.Equal(t, 1.49, cola.Savings)
		assert.Equal(t, "R1.49", FormatPrice(cola.Savings))

		require.NotNil(t, pepsi, "expected a Pepsi group")
		require.Len(t, pepsi.Retailers, 1)
		assert.Equal(t, 0.0, pepsi.Savings)
	})

	t.Run("permissive default absorbs single-keyword names", func(t *testing.T) {
		svc := newGroupingService(MatchConfig{}, GroupConfig{})
		groups := svc.GroupListings(colaCatalogue())

		require.Len(t, groups, 2)
		assert.Len(t, groups[0].Retailers, 3)
		assert.Equal(t, 2.99, groups[0].Savings)
		assert.Len(t, groups[1].Retailers, 2)
		assert.Equal(t, 1.49, groups[1].Savings)
	})
}

func TestGroupListingsRepresentative(t *testing.T) {
	catalogue := []domain.Listing{
		{Name: "Jungle Oats Original 1kg", Retailer: domain.RetailerWoolworths, Price: "R52.99", Category: "Cereal"},
		{Name: "Jungle Oats Original Oats 1kg", Retailer: domain.RetailerCheckers, Price: "R49.99", Category: "Cereal"},
	}
	reversed := []domain.Listing{catalogue[1], catalogue[0]}

	t.Run("first follows catalogue order", func(t *testing.T) {
		svc := newGroupingService(MatchConfig{}, GroupConfig{})
		assert.Equal(t, "Jungle Oats Original 1kg", svc.GroupListings(catalogue)[0].ProductName)
		assert.Equal(t, "Jungle Oats Original Oats 1kg", svc.GroupListings(reversed)[0].ProductName)
	})

	t.Run("smallest name ignores catalogue order", func(t *testing.T) {
		svc := newGroupingService(MatchConfig{}, GroupConfig{Representative: RepresentativeSmallestName})
		assert.Equal(t, "Jungle Oats Original 1kg", svc.GroupListings(catalogue)[0].ProductName)
		assert.Equal(t, "Jungle Oats Original 1kg", svc.GroupListings(reversed)[0].ProductName)
	})
}

func TestGroupListingsEmptyCatalogue(t *testing.T) {
	svc := newGroupingService(MatchConfig{}, GroupConfig{})
	assert.Empty(t, svc.GroupListings(nil))
}

func TestBuildGroup(t *testing.T) {
	svc := newGroupingService(MatchConfig{}, GroupConfig{})

	t.Run("malformed prices parse to zero", func(t *testing.T) {
		group := svc.BuildGroup([]domain.Listing{
			{Name: "Rama Original 500g", Retailer: domain.RetailerPickNPay, Price: "R32.99"},
			{Name: "Rama Original 500g", Retailer: domain.RetailerShoprite, Price: "out of stock"},
		})
		assert.Equal(t, 0.0, group.LowestPrice)
		assert.Equal(t, domain.RetailerShoprite, group.Retailers[0].Retailer)
		assert.Equal(t, "out of stock", group.Retailers[0].PriceString)
		assert.Equal(t, 32.99, group.Savings)
	})

	t.Run("equal prices keep member order", func(t *testing.T) {
		group := svc.BuildGroup([]domain.Listing{
			{Name: "A", Retailer: domain.RetailerWoolworths, Price: "R10.00"},
			{Name: "A", Retailer: domain.RetailerCheckers, Price: "R10.00"},
		})
		assert.Equal(t, domain.RetailerWoolworths, group.Retailers[0].Retailer)
		assert.Equal(t, domain.RetailerCheckers, group.Retailers[1].Retailer)
	})

	t.Run("no members", func(t *testing.T) {
		group := svc.BuildGroup(nil)
		assert.Empty(t, group.Retailers)
		assert.Equal(t, 0.0, group.Savings)
	})
}

func TestCompareListing(t *testing.T) {
	svc := newGroupingService(MatchConfig{}, GroupConfig{})
	catalogue := groceryCatalogue()

	t.Run("builds comparison for known name", func(t *testing.T) {
		group, err := svc.CompareListing("Albany Superior White Bread Loaf 700g", catalogue)
		require.NoError(t, err)
		assert.Equal(t, "Albany Superior White Bread 700g", group.ProductName)
		assert.Len(t, group.Retailers, 2)
		assert.Equal(t, "R17.49", group.Retailers[0].PriceString)
	})

	t.Run("uses the first listing with that name", func(t *testing.T) {
		group, err := svc.CompareListing("Clover Full Cream Fresh Milk 2L", catalogue)
		require.NoError(t, err)
		assert.Equal(t, "Dairy", group.Category)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := svc.CompareListing("Unknown Product", catalogue)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}
