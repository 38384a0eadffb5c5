// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ReferenceItem is one downloaded unit of reference data: a form definition
// with the version token it was fetched at.
type ReferenceItem struct {
	Key     string          `json:"key"`
	Version string          `json:"version"`
	Payload json.RawMessage `json:"payload"`
}
