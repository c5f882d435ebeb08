/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SaveProfile inserts or replaces the profile payload for a user.
func SaveProfile(ctx context.Context, userID string, payload map[string]any) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	if userID == "" {
		return ErrUserIDRequired
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	query := `
		INSERT INTO profiles (user_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`

	if _, err := pool.Exec(ctx, query, userID, raw); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile returns the stored profile payload, or an empty payload when the
// user has none.
func GetProfile(ctx context.Context, userID string) (map[string]any, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var payload map[string]any

	err := pool.QueryRow(ctx, `SELECT payload FROM profiles WHERE user_id = $1`, userID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return map[string]any{}, nil
		}

		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if payload == nil {
		payload = map[string]any{}
	}

	return payload, nil
}
