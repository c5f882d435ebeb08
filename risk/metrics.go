/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Metric names a daily-entry field used in scoring.
type Metric string

// Important vitals, in canonical order.
const (
	MetricBPSys      Metric = "bp_sys"
	MetricBPDia      Metric = "bp_dia"
	MetricSpO2       Metric = "spo2_avg"
	MetricRestingHR  Metric = "resting_hr"
	MetricSleepHours Metric = "sleep_hours"
	MetricSteps      Metric = "steps"
)

// Lifestyle metrics. They feed the personal baseline but not completeness.
const (
	MetricWater      Metric = "water_ml"
	MetricScreenTime Metric = "screen_time_min"
	MetricToilet     Metric = "toilet_freq"
	MetricAlcohol    Metric = "alcohol"
	MetricSmoking    Metric = "smoking"
)

// ImportantMetrics returns the six clinically important vitals in canonical order.
func ImportantMetrics() []Metric {
	return []Metric{
		MetricBPSys,
		MetricBPDia,
		MetricSpO2,
		MetricRestingHR,
		MetricSleepHours,
		MetricSteps,
	}
}

// AllMetrics returns the important vitals followed by the lifestyle metrics.
func AllMetrics() []Metric {
	return append(ImportantMetrics(),
		MetricWater,
		MetricScreenTime,
		MetricToilet,
		MetricAlcohol,
		MetricSmoking,
	)
}

// IsKnownMetric reports whether name is one of AllMetrics.
func IsKnownMetric(name string) bool {
	for _, m := range AllMetrics() {
		if string(m) == name {
			return true
		}
	}

	return false
}

// Entry is one day of raw readings keyed by metric name. Values are whatever
// the caller decoded (numbers, strings, nil) and pass through Normalize
// before use.
type Entry map[string]any

// Entry metadata keys.
const (
	KeyUserID = "user_id"
	KeyDate   = "date"
)

// UserID returns the entry's user identifier, or "" when unset.
func (e Entry) UserID() string {
	s, _ := e[KeyUserID].(string)
	return s
}

// Date returns the entry's calendar day as submitted, or "" when unset.
func (e Entry) Date() string {
	s, _ := e[KeyDate].(string)
	return s
}

// Readings holds the normalized values present in an entry.
type Readings map[Metric]float64

// Get returns the reading for m and whether it is present.
func (r Readings) Get(m Metric) (float64, bool) {
	v, ok := r[m]
	return v, ok
}

// NormalizeEntry passes every known metric of e through Normalize and keeps
// the present ones.
func NormalizeEntry(e Entry) Readings {
	readings := make(Readings, len(e))

	for _, m := range AllMetrics() {
		if v, ok := Normalize(e[string(m)]); ok {
			readings[m] = v
		}
	}

	return readings
}
