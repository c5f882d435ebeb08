/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/humaidq/astrasync/db"
)

// Store persists profiles and daily logs. db.Store is the production
// implementation.
type Store interface {
	SaveProfile(ctx context.Context, userID string, payload map[string]any) error
	GetProfile(ctx context.Context, userID string) (map[string]any, error)
	SaveDailyLog(ctx context.Context, userID, day string, payload map[string]any) (uuid.UUID, error)
	ListDailyLogs(ctx context.Context, userID string, limit int) ([]db.DailyLog, error)
}

var _ Store = db.Store{}
