/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveDailyLog stores an entry for a user and day. Several entries per day
// are kept; the newest wins ties when listing.
func SaveDailyLog(ctx context.Context, userID, day string, payload map[string]any) (uuid.UUID, error) {
	if pool == nil {
		return uuid.Nil, ErrDatabaseConnectionNotInitialized
	}

	if userID == "" {
		return uuid.Nil, ErrUserIDRequired
	}

	parsed, err := ParseDay(day)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", err, day)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode daily log: %w", err)
	}

	var id uuid.UUID

	query := `
		INSERT INTO daily_logs (user_id, day, payload)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := pool.QueryRow(ctx, query, userID, parsed, raw).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save daily log: %w", err)
	}

	return id, nil
}

// ListDailyLogs returns up to limit logs for a user, newest day first.
func ListDailyLogs(ctx context.Context, userID string, limit int) ([]DailyLog, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	if limit <= 0 {
		return []DailyLog{}, nil
	}

	query := `
		SELECT id, user_id, day, payload, created_at
		FROM daily_logs
		WHERE user_id = $1
		ORDER BY day DESC, created_at DESC
		LIMIT $2
	`

	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}

	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[DailyLog])
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily logs: %w", err)
	}

	return logs, nil
}

// Store exposes the package functions as a value for handlers.
type Store struct{}

// SaveProfile implements the handler store.
func (Store) SaveProfile(ctx context.Context, userID string, payload map[string]any) error {
	return SaveProfile(ctx, userID, payload)
}

// GetProfile implements the handler store.
func (Store) GetProfile(ctx context.Context, userID string) (map[string]any, error) {
	return GetProfile(ctx, userID)
}

// SaveDailyLog implements the handler store.
func (Store) SaveDailyLog(ctx context.Context, userID, day string, payload map[string]any) (uuid.UUID, error) {
	return SaveDailyLog(ctx, userID, day, payload)
}

// ListDailyLogs implements the handler store.
func (Store) ListDailyLogs(ctx context.Context, userID string, limit int) ([]DailyLog, error) {
	return ListDailyLogs(ctx, userID, limit)
}
