/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

import "math"

// maxReasons caps every reason list surfaced to the user.
const maxReasons = 3

// Rule is one population screening check. Match must be pure.
type Rule struct {
	Name   string
	Level  Color
	Weight float64
	Reason string
	Match  func(Readings, ThresholdSet) bool
}

// StandardResult is the outcome of evaluating the standard rules.
type StandardResult struct {
	Score   float64
	Reasons []string
	Worst   Color
	Fired   []string
}

// boundsRule fires when metric m classifies at exactly `at` against its bounds.
// Red and yellow rules for one metric are therefore mutually exclusive.
func boundsRule(name string, m Metric, at Color, level Color, weight float64, reason string) Rule {
	return Rule{
		Name:   name,
		Level:  level,
		Weight: weight,
		Reason: reason,
		Match: func(r Readings, th ThresholdSet) bool {
			v, ok := r.Get(m)
			if !ok {
				return false
			}

			b, ok := th[m]
			if !ok {
				return false
			}

			return b.Level(v) == at
		},
	}
}

// flagRule fires when a lifestyle flag is logged as 1.
func flagRule(name string, m Metric, weight float64, reason string) Rule {
	return Rule{
		Name:   name,
		Level:  Yellow,
		Weight: weight,
		Reason: reason,
		Match: func(r Readings, _ ThresholdSet) bool {
			v, ok := r.Get(m)
			return ok && math.Trunc(v) == 1
		},
	}
}

// StandardRules returns the screening rules in evaluation order. Low steps
// only ever raise Yellow: inactivity alone must not force a Red verdict.
func StandardRules() []Rule {
	return []Rule{
		boundsRule("bp_sys_red", MetricBPSys, Red, Red, 0.40, "BP systolic very high vs standard"),
		boundsRule("bp_sys_yellow", MetricBPSys, Yellow, Yellow, 0.22, "BP systolic high vs standard"),
		boundsRule("bp_dia_red", MetricBPDia, Red, Red, 0.35, "BP diastolic very high vs standard"),
		boundsRule("bp_dia_yellow", MetricBPDia, Yellow, Yellow, 0.20, "BP diastolic high vs standard"),
		boundsRule("spo2_red", MetricSpO2, Red, Red, 0.45, "SpO₂ low vs standard"),
		boundsRule("spo2_yellow", MetricSpO2, Yellow, Yellow, 0.25, "SpO₂ slightly low vs standard"),
		boundsRule("sleep_red", MetricSleepHours, Red, Red, 0.30, "Severe sleep deficit vs standard"),
		boundsRule("sleep_yellow", MetricSleepHours, Yellow, Yellow, 0.18, "Sleep deficit vs standard"),
		boundsRule("resting_hr_red", MetricRestingHR, Red, Red, 0.30, "Resting HR very high vs standard"),
		boundsRule("resting_hr_yellow", MetricRestingHR, Yellow, Yellow, 0.16, "Resting HR high vs standard"),
		boundsRule("steps_very_low", MetricSteps, Red, Yellow, 0.10, "Very low activity today"),
		boundsRule("steps_low", MetricSteps, Yellow, Yellow, 0.07, "Low activity today"),
		flagRule("smoking", MetricSmoking, 0.10, "Smoking logged (risk factor)"),
		flagRule("alcohol", MetricAlcohol, 0.06, "Alcohol logged (risk factor)"),
	}
}

// ApplyRules folds rules over the readings. Every matching rule adds its
// weight and escalates the worst level; only the first maxReasons reasons
// are kept, in rule order.
func ApplyRules(rules []Rule, r Readings, th ThresholdSet) StandardResult {
	res := StandardResult{Worst: Green}

	var total float64

	for _, rule := range rules {
		if !rule.Match(r, th) {
			continue
		}

		total += rule.Weight
		res.Worst = res.Worst.Max(rule.Level)
		res.Fired = append(res.Fired, rule.Name)

		if len(res.Reasons) < maxReasons {
			res.Reasons = append(res.Reasons, rule.Reason)
		}
	}

	res.Score = clamp(total, 0, 1)

	return res
}

// ScoreStandard evaluates the standard rules against the readings.
func ScoreStandard(r Readings, th ThresholdSet) StandardResult {
	return ApplyRules(StandardRules(), r, th)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
