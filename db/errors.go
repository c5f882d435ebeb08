/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	// ErrDatabaseURLEnvVarNotSet is returned when DATABASE_URL is empty.
	ErrDatabaseURLEnvVarNotSet = errors.New("DATABASE_URL environment variable is not set")
	// ErrDatabaseNameNotSpecified is returned when the connection string has no database name.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in connection string")
	// ErrDatabaseConnectionNotInitialized is returned when Init has not run.
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
	// ErrUserIDRequired is returned when a write has no user ID.
	ErrUserIDRequired = errors.New("user id required")
	// ErrInvalidDay is returned when a log date is not a calendar date.
	ErrInvalidDay = errors.New("invalid day")
)
