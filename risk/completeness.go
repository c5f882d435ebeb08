/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Completeness returns the fraction of important vitals present and the
// missing ones in canonical order. Lifestyle metrics do not count.
func Completeness(r Readings) (float64, []Metric) {
	important := ImportantMetrics()

	var (
		missing []Metric
		present int
	)

	for _, m := range important {
		if _, ok := r.Get(m); ok {
			present++
		} else {
			missing = append(missing, m)
		}
	}

	return float64(present) / float64(len(important)), missing
}
