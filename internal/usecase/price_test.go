package usecase

import (
	"math"
	"testing"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		input string
		want  float64
	}{
		{input: "R1,234.50", want: 1234.50},
		{input: "R25.99", want: 25.99},
		{input: "R 24.50", want: 24.50},
		{input: "R1 299,00", want: 129900},
		{input: "garbage", want: 0},
		{input: "", want: 0},
		{input: "R", want: 0},
		{input: "12.5 per kg", want: 12.5},
		{input: ".75", want: 0.75},
		{input: "-R3.00", want: -3},
		{input: "R10.", want: 10},
		{input: "R1\u00a0234.50", want: 1234.50},
		{input: "R\u00a099.99", want: 99.99},
		{input: "R1\u202f234\u2009567.00", want: 1234567},
		{input: "R\v12.00", want: 12},
		{input: "\ufeffR5.25", want: 5.25},
		{input: "R1e3", want: 1000},
		{input: "R2.5E2", want: 250},
		{input: "R1.e1", want: 10},
		{input: "R4e", want: 4},
		{input: "+R7.50", want: 7.5},
		{input: "-.5", want: -0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParsePrice(tc.input); got != tc.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestCanonicalNumber(t *testing.T) {
	testCases := map[string]string{
		"12.50":  "12.50",
		"+3":     "3",
		"-.5":    "-0.5",
		"10.":    "10",
		"1.e3":   "1e3",
		".25E-1": "0.25E-1",
	}

	for input, want := range testCases {
		if got := canonicalNumber(input); got != want {
			t.Errorf("canonicalNumber(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		input float64
		want  string
	}{
		{input: 99.5, want: "R99.50"},
		{input: 0, want: "R0.00"},
		{input: 1234.5, want: "R1234.50"},
		{input: 1.49, want: "R1.49"},
		{input: 10, want: "R10.00"},
		{input: math.NaN(), want: "R0.00"},
		{input: math.Inf(1), want: "R0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatPrice(tc.input); got != tc.want {
				t.Errorf("FormatPrice(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestPriceDifference(t *testing.T) {
	if got := priceDifference(25.99, 24.50); got != 1.49 {
		t.Errorf("priceDifference(25.99, 24.50) = %v, want 1.49", got)
	}
	if got := priceDifference(23, 23); got != 0 {
		t.Errorf("priceDifference(23, 23) = %v, want 0", got)
	}
}
