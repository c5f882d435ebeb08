// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestScoreEntryObeseProfileColdStart(t *testing.T) {
	t.Parallel()

	p := Profile{Age: 50, HeightCM: 170, WeightKG: 90}
	res := ScoreEntry(p, Entry{
		"bp_sys": 150, "bp_dia": 85, "spo2_avg": 97, "sleep_hours": 6.5, "steps": 4000,
	}, nil)

	if res.RiskColor != Green {
		t.Fatalf("expected Green, got %v", res.RiskColor)
	}

	if res.Confidence != 79 {
		t.Fatalf("expected confidence 79, got %d", res.Confidence)
	}

	assertStrings(t, res.Reasons, []string{"BP systolic high vs standard"})
	assertStrings(t, res.MissingInputs, []string{"resting_hr"})
	assertFloatClose(t, res.Completeness, 0.83)
	assertFloatClose(t, res.StandardScore, 0.22)
	assertFloatClose(t, res.PersonalScore, 0)

	if res.HistoryDaysUsed != 0 {
		t.Fatalf("expected no history, got %d", res.HistoryDaysUsed)
	}
}

func TestScoreEntryRedHintForcesRed(t *testing.T) {
	t.Parallel()

	res := ScoreEntry(Profile{}, Entry{"spo2_avg": 88}, nil)

	if res.RiskColor != Red {
		t.Fatalf("expected Red, got %v", res.RiskColor)
	}

	if res.Confidence != 49 {
		t.Fatalf("expected confidence 49, got %d", res.Confidence)
	}

	assertFloatClose(t, res.StandardScore, 0.45)
	assertFloatClose(t, res.Completeness, 0.17)
	assertStrings(t, res.MissingInputs, []string{"bp_sys", "bp_dia", "resting_hr", "sleep_hours"})

	if res.NextSteps[0] != "Add bp_sys, bp_dia to improve accuracy" {
		t.Fatalf("unexpected first next step %q", res.NextSteps[0])
	}

	if res.NextSteps[1] != "Consult a doctor soon for confirmation" {
		t.Fatalf("expected red recommendations, got %v", res.NextSteps)
	}
}

func TestScoreEntryEmpty(t *testing.T) {
	t.Parallel()

	res := ScoreEntry(Profile{}, Entry{}, nil)

	if res.RiskColor != Green || res.Confidence != 41 {
		t.Fatalf("expected Green/41, got %v/%d", res.RiskColor, res.Confidence)
	}

	assertStrings(t, res.Reasons, []string{notEnoughDataReason})

	if len(res.MissingInputs) != maxMissingInputs {
		t.Fatalf("expected missing inputs capped at %d, got %v", maxMissingInputs, res.MissingInputs)
	}
}

func TestScoreEntryCompleteness(t *testing.T) {
	t.Parallel()

	res := ScoreEntry(Profile{}, Entry{"bp_sys": 120, "bp_dia": 80, "spo2_avg": 98, "water_ml": 2000}, nil)

	assertFloatClose(t, res.Completeness, 0.5)
	assertStrings(t, res.MissingInputs, []string{"resting_hr", "sleep_hours", "steps"})

	if res.Confidence != 64 {
		t.Fatalf("expected confidence 64, got %d", res.Confidence)
	}
}

func TestScoreEntryPersonalBaseline(t *testing.T) {
	t.Parallel()

	entry := Entry{
		"bp_sys": 135, "bp_dia": 80, "spo2_avg": 97, "resting_hr": 75,
		"sleep_hours": 7.5, "steps": 3000,
	}
	p := Profile{Age: 30}

	tests := []struct {
		name       string
		days       int
		color      Color
		confidence int
		reasons    []string
	}{
		{
			name: "insufficient history", days: 3, color: Green, confidence: 86,
			reasons: []string{notEnoughDataReason},
		},
		{
			name: "cold start", days: 5, color: Yellow, confidence: 86,
			reasons: []string{
				"bp_sys +14.0 vs your baseline",
				"resting_hr +15.0 vs your baseline",
				"steps -5200.0 vs your baseline",
			},
		},
		{
			name: "warm", days: 10, color: Yellow, confidence: 92,
			reasons: []string{
				"bp_sys +14.0 vs your baseline",
				"resting_hr +14.5 vs your baseline",
				"steps -5450.0 vs your baseline",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ScoreEntry(p, entry, stableHistory(tt.days))

			if res.RiskColor != tt.color || res.Confidence != tt.confidence {
				t.Fatalf("expected %v/%d, got %v/%d", tt.color, tt.confidence, res.RiskColor, res.Confidence)
			}

			assertStrings(t, res.Reasons, tt.reasons)

			if res.HistoryDaysUsed != tt.days {
				t.Fatalf("expected history_days_used %d, got %d", tt.days, res.HistoryDaysUsed)
			}
		})
	}
}

func TestHistoryDepthShiftsWeightToPersonal(t *testing.T) {
	t.Parallel()

	entry := Entry{
		"bp_sys": 145, "bp_dia": 92, "spo2_avg": 97, "resting_hr": 70,
		"sleep_hours": 4.5, "steps": 8000,
	}

	history := func(n int) []Entry {
		h := make([]Entry, n)
		for i := range h {
			h[i] = entry
		}

		return h
	}

	e := NewEngine()

	short := e.Evaluate(Profile{Age: 30}, entry, history(3))
	long := e.Evaluate(Profile{Age: 30}, entry, history(10))

	assertFloatClose(t, short.Standard.Score, 0.6)
	assertFloatClose(t, short.Fusion.Score, 0.39)
	assertFloatClose(t, long.Fusion.Score, 0.24)

	if short.Fusion.Color != Yellow || long.Fusion.Color != Green {
		t.Fatalf("expected Yellow then Green, got %v then %v", short.Fusion.Color, long.Fusion.Color)
	}

	if long.Fusion.Confidence != 92 {
		t.Fatalf("expected confidence 92, got %d", long.Fusion.Confidence)
	}

	if len(short.Baseline) != 0 {
		t.Fatalf("expected no baseline below the minimum history, got %v", short.Baseline)
	}
}

func TestScoreEntryIsIdempotent(t *testing.T) {
	t.Parallel()

	p := Profile{Age: 62, HeightCM: 165, WeightKG: 88}
	entry := Entry{"bp_sys": "142", "spo2_avg": 93, "steps": 1200, "smoking": true}
	history := stableHistory(9)

	first := ScoreEntry(p, entry, history)
	second := ScoreEntry(p, entry, history)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results:\n%+v\n%+v", first, second)
	}
}

func TestScoreEntryMonotonicInSystolic(t *testing.T) {
	t.Parallel()

	p := Profile{Age: 40, HeightCM: 175, WeightKG: 72}
	prev := Green

	for sys := 90; sys <= 220; sys += 5 {
		res := ScoreEntry(p, Entry{"bp_sys": sys, "bp_dia": 80, "spo2_avg": 97}, nil)
		if res.RiskColor.Rank() < prev.Rank() {
			t.Fatalf("color dropped from %v to %v at bp_sys=%d", prev, res.RiskColor, sys)
		}

		prev = res.RiskColor
	}

	if prev != Red {
		t.Fatalf("expected very high systolic to end Red, got %v", prev)
	}
}

func TestScoreEntryBounds(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{},
		{"bp_sys": 300, "bp_dia": 200, "spo2_avg": 50, "sleep_hours": 0, "resting_hr": 200, "steps": 0, "smoking": 1, "alcohol": 1},
		{"bp_sys": 118, "bp_dia": 76, "spo2_avg": 99, "sleep_hours": 8, "resting_hr": 58, "steps": 12000},
	}

	for i, entry := range entries {
		for _, days := range []int{0, 4, 14} {
			res := ScoreEntry(Profile{Age: 35}, entry, stableHistory(days))

			if res.Confidence < 35 || res.Confidence > 92 {
				t.Fatalf("entry %d days %d: confidence %d out of range", i, days, res.Confidence)
			}

			if res.StandardScore < 0 || res.StandardScore > 1 || res.PersonalScore < 0 || res.PersonalScore > 1 {
				t.Fatalf("entry %d days %d: scores out of range %+v", i, days, res)
			}

			if len(res.Reasons) == 0 || len(res.Reasons) > maxReasons {
				t.Fatalf("entry %d days %d: unexpected reasons %v", i, days, res.Reasons)
			}

			if len(res.MissingInputs) > maxMissingInputs {
				t.Fatalf("entry %d days %d: too many missing inputs %v", i, days, res.MissingInputs)
			}
		}
	}
}

func TestNextSteps(t *testing.T) {
	t.Parallel()

	assertStrings(t, NextSteps(Green, nil), []string{
		"Maintain routine and log daily", "Walk 20–30 min", "Sleep 7+ hours",
	})

	steps := NextSteps(Yellow, []string{"bp_sys", "spo2_avg", "steps"})
	if len(steps) != 4 || steps[0] != "Add bp_sys, spo2_avg to improve accuracy" {
		t.Fatalf("unexpected steps %v", steps)
	}

	if steps[1] != "Recheck BP / SpO₂ and log again" {
		t.Fatalf("expected yellow recommendations, got %v", steps)
	}
}

func TestResultJSON(t *testing.T) {
	t.Parallel()

	res := ScoreEntry(Profile{}, Entry{
		"bp_sys": 120, "bp_dia": 80, "spo2_avg": 98, "resting_hr": 60, "sleep_hours": 8, "steps": 9000,
	}, nil)

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	out := string(raw)

	for _, want := range []string{`"risk_color":"Green"`, `"missing_inputs":[]`, `"completeness":1`, `"next_steps":[`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assertFloatClose(t, round2(5.0/6), 0.83)
	assertFloatClose(t, round2(1.0/6), 0.17)
	assertFloatClose(t, round2(0.125), 0.12)
}
