package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/domain/core"
)

// ColumnSummary holds the descriptive statistics of one numeric column.
type ColumnSummary struct {
	Key        core.ColumnKey `json:"key"`
	SampleSize int            `json:"sample_size"`
	Mean       float64        `json:"mean"`
	Median     float64        `json:"median"`
	StdDev     float64        `json:"stddev"`
	Min        float64        `json:"min"`
	Max        float64        `json:"max"`
	Q25        float64        `json:"q25"`
	Q75        float64        `json:"q75"`
}

// Clean strips NaN entries, returning only observed values.
func Clean(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// SummarizeColumn computes descriptive statistics for a numeric series.
func SummarizeColumn(key core.ColumnKey, values []float64) (ColumnSummary, error) {
	data := Clean(values)
	summary := ColumnSummary{Key: key, SampleSize: len(data)}
	if len(data) == 0 {
		return summary, nil
	}

	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, err
	}
	if summary.StdDev, err = stats.StandardDeviation(data); err != nil {
		return summary, err
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return summary, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, err
	}
	if summary.Q25, err = stats.Percentile(data, 25); err != nil {
		return summary, err
	}
	if summary.Q75, err = stats.Percentile(data, 75); err != nil {
		return summary, err
	}
	return summary, nil
}

// Summarize computes the headline dashboard summary for a loaded table.
func Summarize(table *catalog.Table) (catalog.Summary, error) {
	summary := catalog.Summary{
		RowCount:    table.RowCount,
		ColumnCount: len(table.Numeric) + len(table.Categorical),
	}

	if price, ok := table.NumericByKey(catalog.ColPrice); ok {
		cs, err := SummarizeColumn(price.Key, price.Values)
		if err != nil {
			return summary, err
		}
		summary.MeanPrice = cs.Mean
		summary.MedianPrice = cs.Median
		summary.MinPrice = cs.Min
		summary.MaxPrice = cs.Max
		summary.StdDevPrice = cs.StdDev
	}

	if qty, ok := table.NumericByKey(catalog.ColQuantitySold); ok {
		total, err := stats.Sum(Clean(qty.Values))
		if err == nil {
			summary.TotalSold = total
		}
	}

	if brands, ok := table.CategoricalByKey(catalog.ColBrand); ok {
		seen := make(map[string]bool)
		for _, b := range brands.Values {
			if b != "" {
				seen[b] = true
			}
		}
		summary.BrandCount = len(seen)
	}

	return summary, nil
}
