package dataset

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"plain integer", "1000", 1000, true},
		{"plain decimal", "59.9", 59.9, true},
		{"currency prefix", "R$ 59,90", 59.9, true},
		{"currency no space", "R$1.234,56", 1234.56, true},
		{"thousands with decimal comma", "1.234,56", 1234.56, true},
		{"grouped thousands no decimals", "1.234", 1234, true},
		{"multi group thousands", "12.345.678", 12345678, true},
		{"leading plus", "+1000", 1000, true},
		{"mil shorthand", "2mil", 2000, true},
		{"mil with space", "50 mil", 50000, true},
		{"bare mil", "mil", 1000, true},
		{"parenthesized count", "(327)", 327, true},
		{"percentage", "15%", 15, true},
		{"comma decimal", "4,5", 4.5, true},
		{"whitespace padding", "  42  ", 42, true},
		{"empty string", "", 0, false},
		{"nan token", "NaN", 0, false},
		{"null token", "null", 0, false},
		{"dash token", "-", 0, false},
		{"free text", "Nenhum", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseNumber(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			}
			if ok && math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ParseNumber(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGroupedThousands(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1.234", true},
		{"12.345.678", true},
		{"59.9", false},
		{"0.5", false},
		{"1234", false},
		{"1.23", false},
		{"1234.567", false},
	}

	for _, tt := range tests {
		if got := groupedThousands(tt.input); got != tt.expected {
			t.Errorf("groupedThousands(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestLooksNumeric(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected bool
	}{
		{"all numeric", []string{"1", "2", "3", "4", "5"}, true},
		{"currency values", []string{"R$ 10,00", "R$ 20,50", "R$ 5,99"}, true},
		{"mostly numeric passes threshold", []string{"1", "2", "3", "4", "x"}, true},
		{"half numeric fails threshold", []string{"1", "2", "x", "y"}, false},
		{"all text", []string{"Nike", "Adidas", "Olympikus"}, false},
		{"missing tokens ignored", []string{"", "nan", "10", "20"}, true},
		{"only missing tokens", []string{"", "nan", "null"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksNumeric(tt.values); got != tt.expected {
				t.Errorf("looksNumeric(%v) = %v, expected %v", tt.values, got, tt.expected)
			}
		})
	}
}
