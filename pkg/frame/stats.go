package frame

import (
	"github.com/montanaflynn/stats"
)

// numbers filters ds down to its valid numbers, parsed as float64.
func numbers(ds Dataset) stats.Float64Data {
	out := make(stats.Float64Data, 0, len(ds))
	for _, c := range ds {
		if f, ok := toFloat(c); ok {
			out = append(out, f)
		}
	}
	return out
}

// Mean returns the arithmetic mean of the valid numbers in ds, or 0 when
// there are none.
func Mean(ds Dataset) float64 {
	data := numbers(ds)
	if len(data) == 0 {
		return 0
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	return mean
}

// Sum returns the total of the valid numbers in ds, or 0 when there are none.
func Sum(ds Dataset) float64 {
	data := numbers(ds)
	if len(data) == 0 {
		return 0
	}
	sum, err := stats.Sum(data)
	if err != nil {
		return 0
	}
	return sum
}

// Median returns the middle of the sorted valid numbers in ds, averaging the
// two central values for an even count. It returns 0 when there are none.
// ds is not reordered.
func Median(ds Dataset) float64 {
	data := numbers(ds)
	if len(data) == 0 {
		return 0
	}
	median, err := stats.Median(data)
	if err != nil {
		return 0
	}
	return median
}
