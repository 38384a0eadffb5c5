// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// InboxEntry is a record received by the reference server.
type InboxEntry struct {
	ObserverID string          `json:"observer_id"`
	Kind       RecordKind      `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"received_at"`
}
