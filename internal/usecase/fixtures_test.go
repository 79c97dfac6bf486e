package usecase

import "github.com/pricecheck/backend/internal/domain"

// colaCatalogue is the three-listing scenario used across the usecase tests
func colaCatalogue() []domain.Listing {
	return []domain.Listing{
		{Name: "Coca-Cola 2L", Retailer: domain.RetailerPickNPay, Price: "R25.99", Category: "Groceries", URL: "https://pnp.example/coke"},
		{Name: "Coca Cola 2 Litre", Retailer: domain.RetailerCheckers, Price: "R24.50", Category: "Groceries", URL: "https://checkers.example/coke"},
		{Name: "Pepsi 2L", Retailer: domain.RetailerShoprite, Price: "R23.00", Category: "Groceries", URL: "https://shoprite.example/pepsi"},
	}
}

// groceryCatalogue has several products with multi-keyword names across
// retailers and categories
func groceryCatalogue() []domain.Listing {
	return []domain.Listing{
		{Name: "Clover Full Cream Fresh Milk 2L", Retailer: domain.RetailerPickNPay, Price: "R36.99", Category: "Dairy"},
		{Name: "Clover Fresh Full Cream Milk 2 Litre", Retailer: domain.RetailerCheckers, Price: "R34.99", Category: "Dairy"},
		{Name: "Woolworths Full Cream Fresh Milk 2L", Retailer: domain.RetailerWoolworths, Price: "R39.99", Category: "Dairy"},
		{Name: "Clover Low Fat Fresh Milk 2L", Retailer: domain.RetailerShoprite, Price: "R33.99", Category: "Dairy"},
		{Name: "Albany Superior White Bread 700g", Retailer: domain.RetailerPickNPay, Price: "R18.99", Category: "Bakery"},
		{Name: "Albany Superior White Bread Loaf 700g", Retailer: domain.RetailerShoprite, Price: "R17.49", Category: "Bakery"},
		{Name: "Clover Full Cream Fresh Milk 2L", Retailer: domain.RetailerShoprite, Price: "R1,036.99", Category: "Milk & Dairy"},
		{Name: "Tastic Long Grain Parboiled Rice 2kg", Retailer: domain.RetailerCheckers, Price: "R42.99", Category: "Pantry"},
	}
}

func names(listings []domain.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Name + "@" + string(l.Retailer)
	}
	return out
}
