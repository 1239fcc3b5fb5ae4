package analysis

import (
	"fmt"
	"math"
)

// HistogramBin is one interval of a histogram with its occupancy.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Label formats the bin interval for axis display.
func (b HistogramBin) Label() string {
	return fmt.Sprintf("%.0f–%.0f", b.Lower, b.Upper)
}

// Histogram buckets values into binCount equal-width intervals. NaN values
// are ignored. The last bin is closed on both ends so the maximum lands in it.
func Histogram(values []float64, binCount int) []HistogramBin {
	data := Clean(values)
	if len(data) == 0 || binCount <= 0 {
		return nil
	}

	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []HistogramBin{{Lower: min, Upper: max, Count: len(data)}}
	}

	width := (max - min) / float64(binCount)
	bins := make([]HistogramBin, binCount)
	for i := range bins {
		bins[i].Lower = min + float64(i)*width
		bins[i].Upper = min + float64(i+1)*width
	}

	for _, v := range data {
		idx := int(math.Floor((v - min) / width))
		if idx >= binCount {
			idx = binCount - 1
		}
		bins[idx].Count++
	}
	return bins
}
