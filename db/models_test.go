// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "2026-02-12", want: "2026-02-12"},
		{raw: "2026-02-12T23:10:00Z", want: "2026-02-12"},
		{raw: "2026-02-12T01:10:00+04:00", want: "2026-02-12"},
		{raw: "12/02/2026", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDay(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDay) {
				t.Fatalf("ParseDay(%q): expected ErrInvalidDay, got %v", tt.raw, err)
			}

			continue
		}

		if err != nil {
			t.Fatalf("ParseDay(%q) failed: %v", tt.raw, err)
		}

		if got.Format(DayLayout) != tt.want {
			t.Fatalf("ParseDay(%q) = %s, want %s", tt.raw, got.Format(DayLayout), tt.want)
		}
	}
}

func TestEntriesPreservesOrder(t *testing.T) {
	t.Parallel()

	logs := []DailyLog{
		{Day: time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC), Payload: map[string]any{"steps": 9000.0}},
		{Day: time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)},
	}

	entries := Entries(logs)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0]["steps"] != 9000.0 {
		t.Fatalf("expected newest entry first, got %v", entries[0])
	}

	if entries[1] == nil || len(entries[1]) != 0 {
		t.Fatalf("expected empty entry for nil payload, got %v", entries[1])
	}
}
