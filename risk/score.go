/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

import (
	"strconv"
	"strings"
)

const (
	maxMissingInputs = 4
	// missingHintCount is how many missing metrics the next-step hint names.
	missingHintCount = 2

	notEnoughDataReason = "Not enough data: add BP/SpO₂/Sleep for higher accuracy"
)

// Result is the verdict for one daily entry.
type Result struct {
	RiskColor       Color    `json:"risk_color"`
	Confidence      int      `json:"confidence"`
	Reasons         []string `json:"reasons"`
	MissingInputs   []string `json:"missing_inputs"`
	Completeness    float64  `json:"completeness"`
	StandardScore   float64  `json:"standard_score"`
	PersonalScore   float64  `json:"personal_score"`
	HistoryDaysUsed int      `json:"history_days_used"`
	NextSteps       []string `json:"next_steps"`
}

// Breakdown exposes every intermediate stage of a scoring call.
type Breakdown struct {
	Readings     Readings
	Completeness float64
	Missing      []Metric
	Thresholds   ThresholdSet
	Standard     StandardResult
	Baseline     Baseline
	Personal     PersonalResult
	Fusion       Fusion
}

// Engine scores entries. The zero value is not usable; use NewEngine.
type Engine struct {
	Thresholds ThresholdConfig
	Fusion     FusionConfig
	// Rules overrides StandardRules when non-nil.
	Rules []Rule
	// Window is the number of most recent history entries summarised.
	Window int
	// MinSamples is the number of valid readings a metric needs to enter the baseline.
	MinSamples int
	// MinHistory is the history length required before personal scoring runs.
	MinHistory int
}

// NewEngine returns an engine with the default configuration.
func NewEngine() *Engine {
	return &Engine{
		Thresholds: DefaultThresholdConfig(),
		Fusion:     DefaultFusionConfig(),
		Window:     DefaultWindow,
		MinSamples: DefaultMinSamples,
		MinHistory: DefaultMinSamples,
	}
}

var defaultEngine = NewEngine()

// ScoreEntry scores an entry against a newest-first history using the
// default configuration.
func ScoreEntry(p Profile, entry Entry, history []Entry) Result {
	return defaultEngine.Score(p, entry, history)
}

// Evaluate runs every stage and returns the intermediate values.
func (e *Engine) Evaluate(p Profile, entry Entry, history []Entry) Breakdown {
	var bd Breakdown

	bd.Readings = NormalizeEntry(entry)
	bd.Completeness, bd.Missing = Completeness(bd.Readings)

	rules := e.Rules
	if rules == nil {
		rules = StandardRules()
	}

	bd.Thresholds = BuildThresholds(e.Thresholds, p)
	bd.Standard = ApplyRules(rules, bd.Readings, bd.Thresholds)

	if len(history) >= e.MinHistory {
		bd.Baseline = BuildBaseline(history, e.Window, e.MinSamples)
	}

	if len(bd.Baseline) > 0 {
		bd.Personal = ScorePersonal(bd.Readings, bd.Baseline)
	}

	bd.Fusion = Fuse(e.Fusion, FusionInput{
		StandardScore: bd.Standard.Score,
		StandardHint:  bd.Standard.Worst,
		PersonalScore: bd.Personal.Score,
		Completeness:  bd.Completeness,
		HistoryDays:   len(history),
	})

	return bd
}

// Score runs the full pipeline and assembles the user-facing result.
func (e *Engine) Score(p Profile, entry Entry, history []Entry) Result {
	bd := e.Evaluate(p, entry, history)

	reasons := make([]string, 0, maxReasons)
	reasons = append(reasons, bd.Standard.Reasons...)
	reasons = append(reasons, bd.Personal.Reasons...)

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	if len(reasons) == 0 {
		reasons = append(reasons, notEnoughDataReason)
	}

	missing := metricNames(bd.Missing)

	shownMissing := missing
	if len(shownMissing) > maxMissingInputs {
		shownMissing = shownMissing[:maxMissingInputs]
	}

	return Result{
		RiskColor:       bd.Fusion.Color,
		Confidence:      bd.Fusion.Confidence,
		Reasons:         reasons,
		MissingInputs:   shownMissing,
		Completeness:    round2(bd.Completeness),
		StandardScore:   round2(bd.Standard.Score),
		PersonalScore:   round2(bd.Personal.Score),
		HistoryDaysUsed: len(history),
		NextSteps:       NextSteps(bd.Fusion.Color, missing),
	}
}

// NextSteps returns the recommendations for a verdict, preceded by a hint
// naming the first missing metrics when any are missing.
func NextSteps(c Color, missing []string) []string {
	steps := make([]string, 0, 4)

	if len(missing) > 0 {
		named := missing
		if len(named) > missingHintCount {
			named = named[:missingHintCount]
		}

		steps = append(steps, "Add "+strings.Join(named, ", ")+" to improve accuracy")
	}

	switch c {
	case Green:
		steps = append(steps, "Maintain routine and log daily", "Walk 20–30 min", "Sleep 7+ hours")
	case Yellow:
		steps = append(steps, "Recheck BP / SpO₂ and log again", "Hydrate + reduce screen time", "Upload lab report if available")
	default:
		steps = append(steps, "Consult a doctor soon for confirmation", "Enter/Upload confirm tests (BP/Labs)", "Rest and monitor symptoms")
	}

	return steps
}

func metricNames(ms []Metric) []string {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, string(m))
	}

	return names
}

// round2 rounds half-to-even at two decimals on the exact binary value.
func round2(v float64) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}

	return f
}
