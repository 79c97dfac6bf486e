package domain

// Retailer identifies the store a listing was scraped from
type Retailer string

const (
	RetailerPickNPay   Retailer = "Pick n Pay"
	RetailerCheckers   Retailer = "Checkers"
	RetailerShoprite   Retailer = "Shoprite"
	RetailerWoolworths Retailer = "Woolworths"
)

// Retailers lists every supported retailer in display order
var Retailers = []Retailer{
	RetailerPickNPay,
	RetailerCheckers,
	RetailerShoprite,
	RetailerWoolworths,
}

// Valid reports whether r is one of the supported retailers
func (r Retailer) Valid() bool {
	for _, known := range Retailers {
		if r == known {
			return true
		}
	}
	return false
}

// Listing is one retailer's scraped record for a product.
// Listings are never mutated once the catalogue is loaded.
type Listing struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"productName" binding:"required"`
	URL      string   `json:"productURL"`
	ImageURL string   `json:"productImageURL"`
	Price    string   `json:"price"`
	Category string   `json:"category" binding:"required"`
	Retailer Retailer `json:"retailer"`
}

// RetailerPrice is one member of a ProductGroup with its parsed price
type RetailerPrice struct {
	Retailer    Retailer `json:"retailer"`
	Price       float64  `json:"price"`
	PriceString string   `json:"priceString"`
	URL         string   `json:"productURL"`
	ImageURL    string   `json:"productImageURL"`
}

// ProductGroup is a set of listings believed to be the same product,
// with Retailers sorted ascending by Price.
type ProductGroup struct {
	ProductName  string          `json:"productName"`
	Category     string          `json:"category"`
	Retailers    []RetailerPrice `json:"retailers"`
	LowestPrice  float64         `json:"lowestPrice"`
	HighestPrice float64         `json:"highestPrice"`
	Savings      float64         `json:"savings"`
}
