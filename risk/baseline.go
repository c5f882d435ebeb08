/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

import (
	"math"
	"sort"
)

// Baseline defaults.
const (
	DefaultWindow     = 14
	DefaultMinSamples = 4

	// negligibleSpread is the MAD below which the spread floor is substituted.
	negligibleSpread = 1e-6
	// boundWidth is the number of spreads between the median and each bound.
	boundWidth = 2.2
)

// MetricBaseline is the robust summary of one metric's recent history.
type MetricBaseline struct {
	Median  float64 `json:"median"`
	Spread  float64 `json:"mad"`
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
	Samples int     `json:"samples"`
}

// Baseline maps metrics with enough history to their summaries.
type Baseline map[Metric]MetricBaseline

// Median returns the median of xs, averaging the two middle values for even
// lengths. xs is not modified. Median of an empty slice is 0.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// MAD returns the median absolute deviation from the median.
func MAD(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	m := Median(xs)

	deviations := make([]float64, len(xs))
	for i, x := range xs {
		deviations[i] = math.Abs(x - m)
	}

	return Median(deviations)
}

// spreadFloor replaces a degenerate spread: 5% of the median magnitude, at least 1.
func spreadFloor(median float64) float64 {
	return math.Max(1.0, 0.05*math.Abs(median))
}

// BuildBaseline summarises the most recent window entries of a newest-first
// history. A metric is included only with at least minSamples valid readings.
// Non-positive window or minSamples fall back to the defaults.
func BuildBaseline(history []Entry, window, minSamples int) Baseline {
	if window <= 0 {
		window = DefaultWindow
	}

	if minSamples <= 0 {
		minSamples = DefaultMinSamples
	}

	recent := history
	if len(recent) > window {
		recent = recent[:window]
	}

	base := make(Baseline)

	for _, m := range AllMetrics() {
		xs := make([]float64, 0, len(recent))

		for _, row := range recent {
			if v, ok := Normalize(row[string(m)]); ok {
				xs = append(xs, v)
			}
		}

		if len(xs) < minSamples {
			continue
		}

		med := Median(xs)

		spread := MAD(xs)
		if spread < negligibleSpread {
			spread = spreadFloor(med)
		}

		base[m] = MetricBaseline{
			Median:  med,
			Spread:  spread,
			Low:     med - float64(boundWidth*spread),
			High:    med + float64(boundWidth*spread),
			Samples: len(xs),
		}
	}

	return base
}
