/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errEntryRequired         = errors.New("--entry is required")
	errNotAJSONObject        = errors.New("expected a JSON object")
	errNotAJSONArray         = errors.New("expected a JSON array of objects")
	errInvalidEngineSetting  = errors.New("history-limit, baseline-window and cold-start-days must be positive")
)
