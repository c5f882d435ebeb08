/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Weights splits the fused score between the standard and personal signals.
type Weights struct {
	Standard float64 `json:"standard"`
	Personal float64 `json:"personal"`
}

// FusionConfig holds the tunable constants of risk fusion and confidence.
type FusionConfig struct {
	// ColdStartDays is the history depth below which ColdWeights apply.
	ColdStartDays int
	ColdWeights   Weights
	WarmWeights   Weights

	YellowAt float64
	RedAt    float64

	ConfidenceBase         float64
	ConfidenceCompleteness float64
	ConfidenceHistory      float64
	HistoryFactorCold      float64
	HistoryFactorWarm      float64
	ConfidenceMin          int
	ConfidenceMax          int
}

// DefaultFusionConfig returns the standard fusion constants.
func DefaultFusionConfig() FusionConfig {
	return FusionConfig{
		ColdStartDays:          7,
		ColdWeights:            Weights{Standard: 0.65, Personal: 0.35},
		WarmWeights:            Weights{Standard: 0.40, Personal: 0.60},
		YellowAt:               0.35,
		RedAt:                  0.65,
		ConfidenceBase:         0.25,
		ConfidenceCompleteness: 0.45,
		ConfidenceHistory:      0.30,
		HistoryFactorCold:      0.55,
		HistoryFactorWarm:      0.75,
		ConfidenceMin:          35,
		ConfidenceMax:          92,
	}
}

// FusionInput carries the partial estimates being combined.
type FusionInput struct {
	StandardScore float64
	StandardHint  Color
	PersonalScore float64
	Completeness  float64
	HistoryDays   int
}

// Fusion is the combined verdict.
type Fusion struct {
	Color      Color
	Confidence int
	Score      float64
	Weights    Weights
}

// ColdStart reports whether days of history is still below the cold-start cutoff.
func (cfg FusionConfig) ColdStart(days int) bool {
	return days < cfg.ColdStartDays
}

// Fuse blends the standard and personal scores into a color and confidence.
// A Red standard hint always yields Red.
func Fuse(cfg FusionConfig, in FusionInput) Fusion {
	w, historyFactor := cfg.WarmWeights, cfg.HistoryFactorWarm
	if cfg.ColdStart(in.HistoryDays) {
		w, historyFactor = cfg.ColdWeights, cfg.HistoryFactorCold
	}

	// float64() conversions forbid FMA contraction.
	score := float64(w.Standard*in.StandardScore) + float64(w.Personal*in.PersonalScore)

	color := Green
	if score >= cfg.YellowAt {
		color = Yellow
	}

	if score >= cfg.RedAt || in.StandardHint == Red {
		color = Red
	}

	raw := cfg.ConfidenceBase +
		float64(cfg.ConfidenceCompleteness*in.Completeness) +
		float64(cfg.ConfidenceHistory*historyFactor)

	confidence := int(float64(100 * raw))
	if confidence < cfg.ConfidenceMin {
		confidence = cfg.ConfidenceMin
	}

	if confidence > cfg.ConfidenceMax {
		confidence = cfg.ConfidenceMax
	}

	return Fusion{
		Color:      color,
		Confidence: confidence,
		Score:      score,
		Weights:    w,
	}
}
