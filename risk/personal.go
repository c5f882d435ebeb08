/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

import (
	"fmt"
	"math"
	"sort"
)

const (
	// zEpsilon keeps the robust z-score finite.
	zEpsilon = 1e-6
	// zOutlier flags a reading regardless of the low/high bounds.
	zOutlier = 1.5
	// zSaturation is the z-score at which one metric contributes fully.
	zSaturation = 3.0
	// personalSaturation is the summed contribution that saturates the score.
	personalSaturation = 3.0
)

// Deviation describes one metric that left its personal range.
type Deviation struct {
	Metric       Metric  `json:"metric"`
	Value        float64 `json:"value"`
	Delta        float64 `json:"delta"`
	ZScore       float64 `json:"z_score"`
	Contribution float64 `json:"contribution"`
	Reason       string  `json:"reason"`
}

// PersonalResult is the outcome of comparing an entry to the personal baseline.
type PersonalResult struct {
	Score      float64
	Reasons    []string
	Deviations []Deviation
}

// RobustZ returns |v - median| / (spread + epsilon).
func RobustZ(v float64, b MetricBaseline) float64 {
	return math.Abs(v-b.Median) / (b.Spread + zEpsilon)
}

// ScorePersonal compares readings against the baseline. A metric counts as
// anomalous when it falls outside [Low, High] or its z-score exceeds 1.5;
// both checks are kept even though they usually agree.
func ScorePersonal(r Readings, base Baseline) PersonalResult {
	var (
		res   PersonalResult
		total float64
	)

	for _, m := range AllMetrics() {
		b, ok := base[m]
		if !ok {
			continue
		}

		v, ok := r.Get(m)
		if !ok {
			continue
		}

		z := RobustZ(v, b)
		if !(v < b.Low || v > b.High || z > zOutlier) {
			continue
		}

		contribution := math.Min(1.0, z/zSaturation)
		total += contribution

		delta := v - b.Median

		sign := ""
		if delta >= 0 {
			sign = "+"
		}

		res.Deviations = append(res.Deviations, Deviation{
			Metric:       m,
			Value:        v,
			Delta:        delta,
			ZScore:       z,
			Contribution: contribution,
			Reason:       fmt.Sprintf("%s %s%.1f vs your baseline", m, sign, delta),
		})
	}

	sort.SliceStable(res.Deviations, func(i, j int) bool {
		return res.Deviations[i].Contribution > res.Deviations[j].Contribution
	})

	for i := 0; i < len(res.Deviations) && i < maxReasons; i++ {
		res.Reasons = append(res.Reasons, res.Deviations[i].Reason)
	}

	res.Score = clamp(total/personalSaturation, 0, 1)

	return res
}
