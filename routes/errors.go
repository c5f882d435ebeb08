/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errInvalidBody   = errors.New("invalid JSON body")
	errDateRequired  = errors.New("date required")
	errInvalidDate   = errors.New("invalid date")
	errUnknownMetric = errors.New("unknown metric")
	errStorage       = errors.New("storage unavailable")
)
