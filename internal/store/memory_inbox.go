// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/models"
)

// memoryInbox is an in-memory [Inbox] keyed by observer ID.
type memoryInbox struct {
	mu      sync.RWMutex
	entries map[string][]models.InboxEntry
	logger  *logger.Logger
	now     func() time.Time
}

// NewMemoryInbox returns an empty in-memory [Inbox].
func NewMemoryInbox(logger *logger.Logger) Inbox {
	return &memoryInbox{
		entries: make(map[string][]models.InboxEntry),
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (m *memoryInbox) Append(ctx context.Context, observerID string, kind models.RecordKind, payloads ...json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	at := m.now()
	for _, p := range payloads {
		m.entries[observerID] = append(m.entries[observerID], models.InboxEntry{
			ObserverID: observerID,
			Kind:       kind,
			Payload:    slices.Clone(p),
			ReceivedAt: at,
		})
	}

	logger.FromContext(ctx).Debug().
		Str("func", "memoryInbox.Append").
		Str("observer_id", observerID).
		Str("kind", kind.String()).
		Int("count", len(payloads)).
		Msg("records accepted")
	return nil
}

func (m *memoryInbox) Entries(ctx context.Context, observerID string) ([]models.InboxEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.entries[observerID]), nil
}
