package match

import (
	"slices"
	"testing"
)

func TestIsAccessorName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		// Leading get token.
		{"GetWeight", true},
		{"getCarrier", true},
		{"get_sku", true},
		{"GetHTTPCode", true},

		// Value token anywhere.
		{"Value", true},
		{"PointsValue", true},
		{"ValueIn", true},
		{"raw_value", true},

		// Whole tokens only, substrings do not count.
		{"Getter", false},
		{"Getaway", false},
		{"Revalue", false},

		// Ordinary method names.
		{"String", false},
		{"Err", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsAccessorName(tt.input); got != tt.want {
				t.Errorf("IsAccessorName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"PlacedAt", []string{"placed", "at"}},
		{"CustomerID", []string{"customer", "id"}},
		{"SKUCode", []string{"sku", "code"}},
		{"loadYAML", []string{"load", "yaml"}},
		{"unit_price", []string{"unit", "price"}},
		{"enum-name", []string{"enum", "name"}},
		{"grand total", []string{"grand", "total"}},
		{"ALLCAPS", []string{"allcaps"}},
		{"DBRow", []string{"db", "row"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TokenizeIdent(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("TokenizeIdent(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"OrderItem", []string{"Order", "Item"}},
		{"grandTotal", []string{"grand", "Total"}},
		{"XMLName", []string{"XML", "Name"}},
		{"a", []string{"a"}},
		{"Ab", []string{"Ab"}},
		{"AB", []string{"AB"}},
		{"ABc", []string{"A", "Bc"}},
		{"a_b c-d", []string{"a", "b", "c", "d"}},
		{"__", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := splitWords(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("splitWords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
