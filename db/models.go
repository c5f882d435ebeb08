/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/astrasync/risk"
)

// DayLayout is the calendar-date format used for log days.
const DayLayout = "2006-01-02"

// ProfileRecord is a stored user profile payload.
type ProfileRecord struct {
	UserID    string         `db:"user_id"`
	Payload   map[string]any `db:"payload"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// DailyLog is one stored daily entry. Payload keeps the entry exactly as
// submitted.
type DailyLog struct {
	ID        uuid.UUID      `db:"id"`
	UserID    string         `db:"user_id"`
	Day       time.Time      `db:"day"`
	Payload   map[string]any `db:"payload"`
	CreatedAt time.Time      `db:"created_at"`
}

// Entry returns the payload as a scoring entry.
func (l DailyLog) Entry() risk.Entry {
	if l.Payload == nil {
		return risk.Entry{}
	}

	return risk.Entry(l.Payload)
}

// Entries converts logs to scoring entries, preserving order.
func Entries(logs []DailyLog) []risk.Entry {
	entries := make([]risk.Entry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, l.Entry())
	}

	return entries
}

// ParseDay parses a log date. Full timestamps are truncated to their date.
func ParseDay(raw string) (time.Time, error) {
	if day, err := time.Parse(DayLayout, raw); err == nil {
		return day, nil
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}

	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}
