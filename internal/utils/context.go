// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// ObserverIDCtxKey is the context key under which the auth middleware stores
// the authenticated observer ID.
var ObserverIDCtxKey = contextKey("observerID")

// GetObserverIDFromContext returns the observer ID stored by the auth
// middleware.
func GetObserverIDFromContext(ctx context.Context) (string, bool) {
	observerID, ok := ctx.Value(ObserverIDCtxKey).(string)
	return observerID, ok && observerID != ""
}
