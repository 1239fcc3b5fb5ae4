package analysis

import (
	"math"
	"testing"
)

func TestKernelDensity(t *testing.T) {
	values := []float64{10, 12, 11, 13, 50, 52, 51, 49, 11, 50}

	points := KernelDensity(values, 200)
	if len(points) != 200 {
		t.Fatalf("expected 200 grid points, got %d", len(points))
	}

	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			t.Fatal("expected strictly increasing grid")
		}
	}
	for _, p := range points {
		if p.Density < 0 {
			t.Fatalf("expected non-negative density, got %v at x = %v", p.Density, p.X)
		}
	}

	// Trapezoid rule over the padded grid should capture most of the mass.
	var area float64
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		area += dx * (points[i].Density + points[i-1].Density) / 2
	}
	if area < 0.9 || area > 1.1 {
		t.Errorf("expected density to integrate to roughly 1, got %v", area)
	}
}

func TestKernelDensityPeaksNearData(t *testing.T) {
	values := []float64{100, 101, 99, 100, 102, 98, 100}

	points := KernelDensity(values, 100)
	best := points[0]
	for _, p := range points {
		if p.Density > best.Density {
			best = p
		}
	}
	if math.Abs(best.X-100) > 3 {
		t.Errorf("expected density peak near 100, got %v", best.X)
	}
}

func TestKernelDensityDegenerateInput(t *testing.T) {
	if points := KernelDensity([]float64{5}, 100); points != nil {
		t.Error("expected nil for a single observation")
	}
	if points := KernelDensity([]float64{5, 5, 5}, 100); points != nil {
		t.Error("expected nil for constant values")
	}
	if points := KernelDensity([]float64{1, 2, 3}, 1); points != nil {
		t.Error("expected nil for undersized grid")
	}
	if points := KernelDensity(nil, 100); points != nil {
		t.Error("expected nil for empty input")
	}
}

func TestSilvermanBandwidth(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	bw := silvermanBandwidth(data)
	if bw <= 0 {
		t.Fatalf("expected positive bandwidth, got %v", bw)
	}

	// Bandwidth shrinks as the sample grows.
	bigger := make([]float64, 0, 100)
	for i := 0; i < 10; i++ {
		bigger = append(bigger, data...)
	}
	if bwBig := silvermanBandwidth(bigger); bwBig >= bw {
		t.Errorf("expected bandwidth to shrink with sample size: %v >= %v", bwBig, bw)
	}
}
