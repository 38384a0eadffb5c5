// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetObserverIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), ObserverIDCtxKey, "obs-42")

	observerID, ok := GetObserverIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if observerID != "obs-42" {
		t.Errorf("expected observerID=obs-42, got %s", observerID)
	}
}

func TestGetObserverIDFromContext_Missing(t *testing.T) {
	if _, ok := GetObserverIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}

	ctx := context.WithValue(context.Background(), ObserverIDCtxKey, 42)
	if _, ok := GetObserverIDFromContext(ctx); ok {
		t.Error("expected ok=false for value of wrong type")
	}
}
