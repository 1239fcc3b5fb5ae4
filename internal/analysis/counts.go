package analysis

import (
	"sort"
	"strings"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
)

// ValueCounts tallies a categorical column and returns the topN most common
// values in descending count order. Ties break alphabetically so the result
// is stable across runs. Empty cells are skipped.
func ValueCounts(column catalog.CategoricalColumn, topN int) []catalog.ValueCount {
	counts := make(map[string]int)
	for _, v := range column.Values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		counts[v]++
	}

	result := make([]catalog.ValueCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, catalog.ValueCount{Value: value, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})

	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}
