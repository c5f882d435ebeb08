// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func mustSaveDailyLog(t *testing.T, userID, day string, payload map[string]any) uuid.UUID {
	t.Helper()

	id, err := SaveDailyLog(context.Background(), userID, day, payload)
	if err != nil {
		t.Fatalf("SaveDailyLog(%s, %s) failed: %v", userID, day, err)
	}

	return id
}

func TestListDailyLogsNewestFirst(t *testing.T) {
	resetDatabase(t)

	ctx := context.Background()

	mustSaveDailyLog(t, "u1", "2026-02-10", map[string]any{"date": "2026-02-10", "steps": 1000})
	mustSaveDailyLog(t, "u1", "2026-02-12", map[string]any{"date": "2026-02-12", "steps": 3000})
	mustSaveDailyLog(t, "u1", "2026-02-11", map[string]any{"date": "2026-02-11", "steps": 2000})
	second := mustSaveDailyLog(t, "u1", "2026-02-12", map[string]any{"date": "2026-02-12", "steps": 3500})
	mustSaveDailyLog(t, "u2", "2026-02-13", map[string]any{"date": "2026-02-13"})

	logs, err := ListDailyLogs(ctx, "u1", 3)
	if err != nil {
		t.Fatalf("ListDailyLogs failed: %v", err)
	}

	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}

	if logs[0].ID != second {
		t.Fatalf("expected the latest insert for the newest day first, got %v", logs[0].Payload)
	}

	wantSteps := []float64{3500, 3000, 2000}
	for i, want := range wantSteps {
		if logs[i].Payload["steps"] != want {
			t.Fatalf("log %d: expected steps %v, got %v", i, want, logs[i].Payload["steps"])
		}

		if logs[i].UserID != "u1" {
			t.Fatalf("log %d: leaked user %q", i, logs[i].UserID)
		}
	}

	entries := Entries(logs)
	if entries[2].Date() != "2026-02-11" {
		t.Fatalf("expected entry date to survive storage, got %q", entries[2].Date())
	}
}

func TestListDailyLogsEmpty(t *testing.T) {
	resetDatabase(t)

	logs, err := ListDailyLogs(context.Background(), "ghost", 14)
	if err != nil {
		t.Fatalf("ListDailyLogs failed: %v", err)
	}

	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %d", len(logs))
	}
}

func TestSaveDailyLogValidation(t *testing.T) {
	resetDatabase(t)

	ctx := context.Background()

	if _, err := SaveDailyLog(ctx, "u1", "yesterday", map[string]any{}); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}

	if _, err := SaveDailyLog(ctx, "", "2026-02-12", map[string]any{}); !errors.Is(err, ErrUserIDRequired) {
		t.Fatalf("expected ErrUserIDRequired, got %v", err)
	}
}
