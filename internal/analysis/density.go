package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
)

// DensityPoint is one evaluation of a kernel density estimate.
type DensityPoint struct {
	X       float64 `json:"x"`
	Density float64 `json:"density"`
}

// KernelDensity evaluates a gaussian kernel density estimate of the values on
// a regular grid of gridSize points spanning the observed range padded by
// three bandwidths on each side. Bandwidth follows Silverman's rule of thumb.
func KernelDensity(values []float64, gridSize int) []DensityPoint {
	data := Clean(values)
	if len(data) < 2 || gridSize < 2 {
		return nil
	}

	bandwidth := silvermanBandwidth(data)
	if bandwidth <= 0 {
		return nil
	}

	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	// Three bandwidths of padding keep the gaussian tails on the grid, so
	// the curve integrates to ~1 even for clustered data.
	lo := min - 3*bandwidth
	hi := max + 3*bandwidth
	step := (hi - lo) / float64(gridSize-1)

	norm := 1.0 / (float64(len(data)) * bandwidth * math.Sqrt(2*math.Pi))

	points := make([]DensityPoint, gridSize)
	for i := range points {
		x := lo + float64(i)*step
		sum := 0.0
		for _, v := range data {
			z := (x - v) / bandwidth
			sum += math.Exp(-0.5 * z * z)
		}
		points[i] = DensityPoint{X: x, Density: norm * sum}
	}
	return points
}

// silvermanBandwidth computes Silverman's rule-of-thumb bandwidth:
// 0.9 * min(stddev, IQR/1.34) * n^(-1/5).
func silvermanBandwidth(data []float64) float64 {
	n := float64(len(data))

	stddev, err := stats.StandardDeviation(data)
	if err != nil {
		return 0
	}

	q25, err1 := stats.Percentile(data, 25)
	q75, err2 := stats.Percentile(data, 75)

	spread := stddev
	if err1 == nil && err2 == nil {
		iqr := (q75 - q25) / 1.34
		if iqr > 0 && iqr < spread {
			spread = iqr
		}
	}
	if spread <= 0 {
		return 0
	}

	return 0.9 * spread * math.Pow(n, -0.2)
}
