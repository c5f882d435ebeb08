/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Bounds holds the alert boundaries for one metric. Higher-is-worse metrics
// set the *High fields, lower-is-worse metrics set the *Low fields.
type Bounds struct {
	YellowHigh *float64 `json:"yellow_high,omitempty"`
	RedHigh    *float64 `json:"red_high,omitempty"`
	YellowLow  *float64 `json:"yellow_low,omitempty"`
	RedLow     *float64 `json:"red_low,omitempty"`
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

func high(yellow, red float64) Bounds {
	return Bounds{YellowHigh: ptr(yellow), RedHigh: ptr(red)}
}

func low(yellow, red float64) Bounds {
	return Bounds{YellowLow: ptr(yellow), RedLow: ptr(red)}
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}

	return ptr(*p)
}

func (b Bounds) clone() Bounds {
	return Bounds{
		YellowHigh: clonePtr(b.YellowHigh),
		RedHigh:    clonePtr(b.RedHigh),
		YellowLow:  clonePtr(b.YellowLow),
		RedLow:     clonePtr(b.RedLow),
	}
}

// Level classifies v against the bounds. Red boundaries are checked first;
// high boundaries are inclusive, low boundaries are exclusive.
func (b Bounds) Level(v float64) Color {
	switch {
	case b.RedHigh != nil && v >= *b.RedHigh:
		return Red
	case b.YellowHigh != nil && v >= *b.YellowHigh:
		return Yellow
	case b.RedLow != nil && v < *b.RedLow:
		return Red
	case b.YellowLow != nil && v < *b.YellowLow:
		return Yellow
	default:
		return Green
	}
}

// ThresholdSet maps each important vital to its derived bounds.
type ThresholdSet map[Metric]Bounds

// ThresholdConfig is the population screening table plus its demographic
// adjustments. BuildThresholds never modifies it.
type ThresholdConfig struct {
	Base map[Metric]Bounds

	// RelaxedHRAgeGroups get RelaxedRestingHR instead of the base resting HR bounds.
	RelaxedHRAgeGroups []AgeGroup
	RelaxedRestingHR   Bounds

	// Obese BMI band tightens both blood pressure bounds.
	ObeseBPSys Bounds
	ObeseBPDia Bounds
}

// DefaultThresholdConfig returns the standard screening thresholds.
func DefaultThresholdConfig() ThresholdConfig {
	return ThresholdConfig{
		Base: map[Metric]Bounds{
			MetricBPSys:      high(140, 160),
			MetricBPDia:      high(90, 100),
			MetricSpO2:       low(94, 90),
			MetricSleepHours: low(5.0, 4.0),
			MetricRestingHR:  high(90, 100),
			MetricSteps:      low(3000, 1500),
		},
		RelaxedHRAgeGroups: []AgeGroup{Age45To59, Age60Plus},
		RelaxedRestingHR:   high(95, 105),
		ObeseBPSys:         high(135, 155),
		ObeseBPDia:         high(88, 98),
	}
}

// BuildThresholds derives a fresh threshold set for a profile.
func BuildThresholds(cfg ThresholdConfig, p Profile) ThresholdSet {
	set := make(ThresholdSet, len(cfg.Base))
	for m, b := range cfg.Base {
		set[m] = b.clone()
	}

	ageGroup := p.AgeGroup()
	for _, g := range cfg.RelaxedHRAgeGroups {
		if g == ageGroup {
			set[MetricRestingHR] = cfg.RelaxedRestingHR.clone()
			break
		}
	}

	if p.BMIBand() == BMIObese {
		set[MetricBPSys] = cfg.ObeseBPSys.clone()
		set[MetricBPDia] = cfg.ObeseBPDia.clone()
	}

	return set
}
