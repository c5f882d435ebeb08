/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/astrasync/risk"
)

const healthConnectSource = "health_connect"

// healthConnectFields are copied from a Health Connect payload when present.
var healthConnectFields = []string{"sleep_hours", "heart_rate_avg", "calories"}

// MapHealthConnect converts a Health Connect export into a daily entry.
// Steps default to 0 and the source to "health_connect".
func MapHealthConnect(payload map[string]any) risk.Entry {
	entry := risk.Entry{
		risk.KeyDate: payload[risk.KeyDate],
		"steps":      0,
		"source":     healthConnectSource,
	}

	if v, ok := payload["steps"]; ok && v != nil {
		entry["steps"] = v
	}

	for _, key := range healthConnectFields {
		if v, ok := payload[key]; ok && v != nil {
			entry[key] = v
		}
	}

	if src, ok := payload["source"].(string); ok && src != "" {
		entry["source"] = src
	}

	if id := risk.Entry(payload).UserID(); id != "" {
		entry[risk.KeyUserID] = id
	}

	return entry
}

// IngestHealthConnect maps a Health Connect payload and stores it as a daily entry.
func IngestHealthConnect(c flamego.Context, store Store) {
	body, err := decodeObject(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	saveEntry(c, store, userIDFrom(body), MapHealthConnect(body))
}
