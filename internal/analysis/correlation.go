package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/domain/core"
)

// CorrelationMatrix holds pairwise Pearson correlations over the numeric
// columns of a table, in table column order.
type CorrelationMatrix struct {
	Keys   []core.ColumnKey `json:"keys"`
	Values [][]float64      `json:"values"`
}

// At returns the correlation between columns i and j.
func (m CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// Correlations computes the Pearson correlation matrix over all numeric
// columns, using pairwise-complete observations so one missing cell does not
// discard a whole row from every pair.
func Correlations(table *catalog.Table) CorrelationMatrix {
	n := len(table.Numeric)
	matrix := CorrelationMatrix{
		Keys:   table.NumericKeys(),
		Values: make([][]float64, n),
	}

	for i := range matrix.Values {
		matrix.Values[i] = make([]float64, n)
		matrix.Values[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := PairwiseCorrelation(table.Numeric[i].Values, table.Numeric[j].Values)
			matrix.Values[i][j] = r
			matrix.Values[j][i] = r
		}
	}
	return matrix
}

// PairwiseCorrelation computes Pearson's r over index pairs where both
// series have an observed value. Returns 0 when fewer than 3 pairs remain
// or either series is constant.
func PairwiseCorrelation(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 3 {
		return 0
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// PairwiseObservations counts the index pairs where both series have an
// observed value, the sample size behind PairwiseCorrelation.
func PairwiseObservations(x, y []float64) int {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	count := 0
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		count++
	}
	return count
}

// CorrelationPValue computes the two-tailed p-value for a Pearson
// correlation via the t-transform.
func CorrelationPValue(correlation float64, sampleSize int) float64 {
	if sampleSize < 3 {
		return 1.0
	}
	if math.Abs(correlation) >= 1 {
		return 0
	}

	df := float64(sampleSize - 2)
	tStatistic := correlation * math.Sqrt(df/(1-correlation*correlation))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - tDist.CDF(math.Abs(tStatistic)))
}
