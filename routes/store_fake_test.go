// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/astrasync/db"
)

var errFakeStoreDown = errors.New("store down")

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu       sync.Mutex
	profiles map[string]map[string]any
	logs     []db.DailyLog
	seq      int
	fail     bool
}

func newMemStore() *memStore {
	return &memStore{profiles: map[string]map[string]any{}}
}

func (s *memStore) SaveProfile(_ context.Context, userID string, payload map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return errFakeStoreDown
	}

	s.profiles[userID] = payload

	return nil
}

func (s *memStore) GetProfile(_ context.Context, userID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return nil, errFakeStoreDown
	}

	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}

	return map[string]any{}, nil
}

func (s *memStore) SaveDailyLog(_ context.Context, userID, day string, payload map[string]any) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return uuid.Nil, errFakeStoreDown
	}

	parsed, err := db.ParseDay(day)
	if err != nil {
		return uuid.Nil, err
	}

	s.seq++

	log := db.DailyLog{
		ID:        uuid.New(),
		UserID:    userID,
		Day:       parsed,
		Payload:   payload,
		CreatedAt: time.Unix(int64(s.seq), 0),
	}
	s.logs = append(s.logs, log)

	return log.ID, nil
}

func (s *memStore) ListDailyLogs(_ context.Context, userID string, limit int) ([]db.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return nil, errFakeStoreDown
	}

	var out []db.DailyLog

	for _, l := range s.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Day.Equal(out[j].Day) {
			return out[i].Day.After(out[j].Day)
		}

		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
