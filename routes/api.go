/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/astrasync/risk"
)

// DefaultUserID is used when a request does not name a user.
const DefaultUserID = "demo_user"

// Options configures the API handlers.
type Options struct {
	// HistoryLimit is the number of recent logs fed to the scorer.
	HistoryLimit int
	// HistoryPageSize is the number of logs returned by the history endpoints.
	HistoryPageSize int
	// CORSOrigin is sent as Access-Control-Allow-Origin.
	CORSOrigin string
}

// DefaultOptions returns the options used when flags are not set.
func DefaultOptions() Options {
	return Options{
		HistoryLimit:    risk.DefaultWindow,
		HistoryPageSize: 60,
		CORSOrigin:      "*",
	}
}

// Register maps the dependencies and mounts the JSON API on f.
func Register(f *flamego.Flame, store Store, engine *risk.Engine, opts Options) {
	f.MapTo(store, (*Store)(nil))
	f.Map(engine)
	f.Map(opts)

	f.Use(CORS(opts.CORSOrigin))

	f.Get("/health", Health)
	f.Post("/profile", SaveProfile)
	f.Post("/submit_data", SubmitData)
	f.Post("/score", Score)
	f.Get("/history/{user_id}", History)
	f.Get("/history/{user_id}/chart/{metric}", HistoryChart)
	f.Get("/thresholds/{user_id}", Thresholds)
	f.Post("/ingest/health-connect", IngestHealthConnect)

	for _, path := range []string{
		"/health", "/profile", "/submit_data", "/score", "/history/{user_id}",
		"/history/{user_id}/chart/{metric}", "/thresholds/{user_id}", "/ingest/health-connect",
	} {
		f.Options(path, Preflight)
	}
}

// CORS sets the cross-origin headers on every response.
func CORS(origin string) flamego.Handler {
	if origin == "" {
		origin = "*"
	}

	return func(c flamego.Context) {
		h := c.ResponseWriter().Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
	}
}

// Preflight answers CORS preflight requests.
func Preflight(c flamego.Context) {
	c.ResponseWriter().WriteHeader(http.StatusNoContent)
}

// Health reports that the service is up.
func Health(c flamego.Context) {
	writeJSON(c, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(c flamego.Context, status int, v any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "path", c.Request().URL.Path, "error", err)
	}
}

func writeError(c flamego.Context, status int, err error) {
	writeJSON(c, status, map[string]any{"ok": false, "error": err.Error()})
}

// decodeObject reads a JSON object body, keeping numbers exact.
func decodeObject(c flamego.Context) (map[string]any, error) {
	dec := json.NewDecoder(c.Request().Body().ReadCloser())
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, errInvalidBody
	}

	if body == nil {
		return nil, errInvalidBody
	}

	return body, nil
}

// userIDFrom returns the body's user_id, or DefaultUserID.
func userIDFrom(body map[string]any) string {
	if id := risk.Entry(body).UserID(); id != "" {
		return id
	}

	return DefaultUserID
}
