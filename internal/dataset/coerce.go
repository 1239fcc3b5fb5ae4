package dataset

import (
	"strconv"
	"strings"
)

// numericThreshold is the share of non-empty cells that must parse as numbers
// for a column to be treated as numeric.
const numericThreshold = 0.8

var missingTokens = map[string]bool{
	"":      true,
	"nan":   true,
	"null":  true,
	"none":  true,
	"n/a":   true,
	"na":    true,
	"-":     true,
	"sem":   true, // "sem avaliações", truncated exports
	"obs.:": true,
}

// ParseNumber coerces a raw cell into a float64. It tolerates the formats
// found in Brazilian marketplace exports: currency prefixes ("R$ 59,90"),
// thousands dots with decimal commas ("1.234,56"), leading plus signs
// ("+1000"), review counts in parentheses ("(327)"), percentages ("15%")
// and "mil" shorthand ("2mil" = 2000).
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if missingTokens[strings.ToLower(s)] {
		return 0, false
	}

	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "()")
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	multiplier := 1.0
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, "mil") {
		multiplier = 1000.0
		s = strings.TrimSpace(s[:len(s)-3])
		if s == "" {
			s = "1"
		}
	}

	// pt-BR number format: dots group thousands, comma marks decimals.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if groupedThousands(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * multiplier, true
}

// groupedThousands reports whether a dotted string like "1.234" or "12.345.678"
// is a grouped integer rather than a decimal ("59.9" is not).
func groupedThousands(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return false
	}
	if len(parts[0]) == 0 || len(parts[0]) > 3 {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}

// looksNumeric reports whether enough non-empty cells of a column parse as
// numbers for the column to be coerced to a numeric series.
func looksNumeric(values []string) bool {
	nonEmpty := 0
	parsed := 0
	for _, v := range values {
		if missingTokens[strings.ToLower(strings.TrimSpace(v))] {
			continue
		}
		nonEmpty++
		if _, ok := ParseNumber(v); ok {
			parsed++
		}
	}
	if nonEmpty == 0 {
		return false
	}
	return float64(parsed)/float64(nonEmpty) >= numericThreshold
}
