// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"net/http"
	"testing"
)

func TestMapHealthConnect(t *testing.T) {
	t.Parallel()

	entry := MapHealthConnect(map[string]any{
		"date":           "2026-02-12",
		"sleep_hours":    6.5,
		"heart_rate_avg": 72,
		"calories":       nil,
		"unrelated":      "dropped",
	})

	if entry.Date() != "2026-02-12" {
		t.Fatalf("expected date to be kept, got %q", entry.Date())
	}

	if entry["steps"] != 0 {
		t.Fatalf("expected steps to default to 0, got %v", entry["steps"])
	}

	if entry["source"] != "health_connect" {
		t.Fatalf("expected default source, got %v", entry["source"])
	}

	if entry["sleep_hours"] != 6.5 || entry["heart_rate_avg"] != 72 {
		t.Fatalf("expected vitals to be copied, got %v", entry)
	}

	for _, key := range []string{"calories", "unrelated", "user_id"} {
		if _, ok := entry[key]; ok {
			t.Fatalf("expected %s to be absent, got %v", key, entry)
		}
	}

	custom := MapHealthConnect(map[string]any{"date": "2026-02-12", "steps": 9100, "source": "pixel_watch", "user_id": "u7"})
	if custom["steps"] != 9100 || custom["source"] != "pixel_watch" || custom.UserID() != "u7" {
		t.Fatalf("unexpected mapping %v", custom)
	}
}

func TestIngestHealthConnect(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	f := newTestApp(store)

	rec := doRequest(t, f, http.MethodPost, "/ingest/health-connect", `{"user_id":"u3","date":"2026-02-12","sleep_hours":7}`)
	assertStatus(t, rec, http.StatusOK)

	logs, err := store.ListDailyLogs(context.Background(), "u3", 5)
	if err != nil || len(logs) != 1 {
		t.Fatalf("expected one stored log, got %d (%v)", len(logs), err)
	}

	if logs[0].Payload["steps"] != 0 || logs[0].Payload["source"] != "health_connect" {
		t.Fatalf("unexpected stored payload %v", logs[0].Payload)
	}

	rec = doRequest(t, f, http.MethodPost, "/ingest/health-connect", `{"steps":100}`)
	assertStatus(t, rec, http.StatusBadRequest)
	assertErrorMessage(t, rec, "date required")
}
