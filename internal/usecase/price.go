package usecase

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is prepended to every formatted price
const CurrencyPrefix = "R"

var (
	// priceNoiseRegex matches the currency symbol, thousands separators and whitespace
	priceNoiseRegex = regexp.MustCompile(`[R,` + spaceClass + `]`)

	// leadingNumberRegex matches the longest decimal number, with optional
	// sign and exponent, at the start of a string
	leadingNumberRegex = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`)
)

// ParsePrice converts a scraped price such as "R1,234.50" into a number.
// Trailing garbage after the number is ignored; input with no leading
// number parses to 0.
func ParsePrice(price string) float64 {
	cleaned := priceNoiseRegex.ReplaceAllString(price, "")

	number := leadingNumberRegex.FindString(cleaned)
	if number == "" {
		return 0
	}

	d, err := decimal.NewFromString(canonicalNumber(number))
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// canonicalNumber rewrites a leadingNumberRegex match into the form
// decimal accepts: no "+" sign, a digit before and after any decimal point
func canonicalNumber(number string) string {
	sign := ""
	switch number[0] {
	case '-':
		sign = "-"
		number = number[1:]
	case '+':
		number = number[1:]
	}

	exponent := ""
	if i := strings.IndexAny(number, "eE"); i >= 0 {
		number, exponent = number[:i], number[i:]
	}

	if strings.HasPrefix(number, ".") {
		number = "0" + number
	}
	number = strings.TrimSuffix(number, ".")

	return sign + number + exponent
}

// FormatPrice renders a price with the currency prefix and exactly two
// decimal places. Non-finite values format as zero.
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		price = 0
	}
	return CurrencyPrefix + decimal.NewFromFloat(price).StringFixed(2)
}

// priceDifference returns high-low computed in decimal arithmetic so that
// values like 25.99-24.50 come back as 1.49 rather than 1.4899999999999984
func priceDifference(high, low float64) float64 {
	return decimal.NewFromFloat(high).Sub(decimal.NewFromFloat(low)).InexactFloat64()
}
