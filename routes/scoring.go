/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/astrasync/db"
	"github.com/humaidq/astrasync/risk"
)

// SaveProfile upserts the posted profile for its user.
func SaveProfile(c flamego.Context, store Store) {
	body, err := decodeObject(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	userID := userIDFrom(body)

	if err := store.SaveProfile(c.Request().Context(), userID, body); err != nil {
		logger.Error("Failed to save profile", "user_id", userID, "error", err)
		writeError(c, http.StatusInternalServerError, errStorage)

		return
	}

	writeJSON(c, http.StatusOK, map[string]bool{"ok": true})
}

// SubmitData stores a daily entry. The entry must carry a date.
func SubmitData(c flamego.Context, store Store) {
	body, err := decodeObject(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	saveEntry(c, store, userIDFrom(body), risk.Entry(body))
}

func saveEntry(c flamego.Context, store Store, userID string, entry risk.Entry) {
	day := entry.Date()
	if day == "" {
		writeError(c, http.StatusBadRequest, errDateRequired)
		return
	}

	id, err := store.SaveDailyLog(c.Request().Context(), userID, day, entry)
	if err != nil {
		if errors.Is(err, db.ErrInvalidDay) {
			writeError(c, http.StatusBadRequest, errInvalidDate)
			return
		}

		logger.Error("Failed to save daily log", "user_id", userID, "date", day, "error", err)
		writeError(c, http.StatusInternalServerError, errStorage)

		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"ok": true, "id": id.String()})
}

// Score scores the posted entry against the user's profile and recent logs.
func Score(c flamego.Context, store Store, engine *risk.Engine, opts Options) {
	body, err := decodeObject(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request().Context()
	userID := userIDFrom(body)

	profile, err := store.GetProfile(ctx, userID)
	if err != nil {
		logger.Error("Failed to load profile", "user_id", userID, "error", err)
		writeError(c, http.StatusInternalServerError, errStorage)

		return
	}

	logs, err := store.ListDailyLogs(ctx, userID, opts.HistoryLimit)
	if err != nil {
		logger.Error("Failed to load history", "user_id", userID, "error", err)
		writeError(c, http.StatusInternalServerError, errStorage)

		return
	}

	result := engine.Score(risk.ProfileFromMap(profile), risk.Entry(body), db.Entries(logs))

	scoringLogger.Debug("Scored entry",
		"user_id", userID,
		"risk_color", result.RiskColor,
		"confidence", result.Confidence,
		"history_days", result.HistoryDaysUsed,
	)

	writeJSON(c, http.StatusOK, result)
}

// History returns the user's most recent logs, newest first.
func History(c flamego.Context, store Store, opts Options) {
	userID := c.Param("user_id")

	logs, err := store.ListDailyLogs(c.Request().Context(), userID, opts.HistoryPageSize)
	if err != nil {
		logger.Error("Failed to load history", "user_id", userID, "error", err)
		writeError(c, http.StatusInternalServerError, errStorage)

		return
	}

	payloads := make([]map[string]any, 0, len(logs))
	for _, l := range logs {
		payloads = append(payloads, l.Entry())
	}

	writeJSON(c, http.StatusOK, map[string]any{"logs": payloads})
}

type thresholdsResponse struct {
	UserID     string            `json:"user_id"`
	AgeGroup   risk.AgeGroup     `json:"age_group"`
	BMIBand    risk.BMIBand      `json:"bmi_band"`
	Thresholds risk.ThresholdSet `json:"thresholds"`
}

// Thresholds returns the standard thresholds derived from the user's profile.
func Thresholds(c flamego.Context, store Store, engine *risk.Engine) {
	userID := c.Param("user_id")

	payload, err := store.GetProfile(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to load profile", "user_id", userID, "error", err)
		writeError(c, http.StatusInternalServerError, errStorage)

		return
	}

	profile := risk.ProfileFromMap(payload)

	writeJSON(c, http.StatusOK, thresholdsResponse{
		UserID:     userID,
		AgeGroup:   profile.AgeGroup(),
		BMIBand:    profile.BMIBand(),
		Thresholds: risk.BuildThresholds(engine.Thresholds, profile),
	})
}
