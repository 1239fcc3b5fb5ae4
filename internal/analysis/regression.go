package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Regression holds an ordinary least squares fit of y on x.
type Regression struct {
	Intercept  float64 `json:"intercept"`
	Slope      float64 `json:"slope"`
	RSquared   float64 `json:"r_squared"`
	PValue     float64 `json:"p_value"` // two-tailed test on the slope
	SampleSize int     `json:"sample_size"`
}

// Predict evaluates the fitted line at x.
func (r Regression) Predict(x float64) float64 {
	return r.Intercept + r.Slope*x
}

// LinearRegression fits y = a + b*x by OLS over pairwise-complete
// observations, returning false when fewer than 3 pairs remain or x is
// constant.
func LinearRegression(x, y []float64) (Regression, bool) {
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
		return Regression{}, false
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return Regression{}, false
	}

	reg := Regression{
		Intercept:  alpha,
		Slope:      beta,
		SampleSize: len(xs),
	}

	r := stat.Correlation(xs, ys, nil)
	if !math.IsNaN(r) {
		reg.RSquared = r * r
	}
	reg.PValue = slopePValue(xs, ys, reg)

	return reg, true
}

// slopePValue runs a two-tailed t-test on the slope coefficient.
func slopePValue(xs, ys []float64, reg Regression) float64 {
	n := len(xs)
	if n < 3 {
		return 1.0
	}

	// Residual standard error and the slope's standard error.
	var rss, sxx float64
	meanX := stat.Mean(xs, nil)
	for i := range xs {
		resid := ys[i] - reg.Predict(xs[i])
		rss += resid * resid
		dx := xs[i] - meanX
		sxx += dx * dx
	}
	if sxx == 0 {
		return 1.0
	}

	df := float64(n - 2)
	se := math.Sqrt(rss / df / sxx)
	if se == 0 {
		return 0
	}

	tStatistic := reg.Slope / se
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - tDist.CDF(math.Abs(tStatistic)))
}
