// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-observer-sync/internal/adapter"
	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/mock"
	"github.com/MKhiriev/go-observer-sync/models"
)

func newTestReconciler(t *testing.T, invalidateOnCommit bool) (VersionReconciler, *mock.MockLocalStore, *mock.MockRemoteService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mock.NewMockLocalStore(ctrl)
	rs := mock.NewMockRemoteService(ctrl)

	cfg := config.ClientSync{InvalidateOnCommit: invalidateOnCommit}
	return NewVersionReconciler(st, rs, cfg, logger.Nop()), st, rs
}

func versions(pairs ...string) models.VersionSet {
	set := make(models.VersionSet, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		set = append(set, models.VersionEntry{Key: pairs[i], Version: pairs[i+1]})
	}
	return set
}

// ── Check ────────────────────────────────────────────────────────────────────

func TestCheck_RemoteFailure_AbortsWithoutTouchingStore(t *testing.T) {
	r, _, rs := newTestReconciler(t, false)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(nil, errTransport)

	_, err := r.Check(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReconciliationAbort)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestCheck_EqualSets_Unchanged(t *testing.T) {
	r, st, rs := newTestReconciler(t, false)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("B", "v1", "A", "v1"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1", "B", "v1"), true, nil)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Times(0)

	rec, err := r.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, rec.Unchanged())
	assert.Empty(t, rec.Outdated)
	assert.False(t, rec.Purged)
}

func TestCheck_ChangedSet_PurgesEagerly(t *testing.T) {
	r, st, rs := newTestReconciler(t, false)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v1", "B", "v2", "C", "v1"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1", "B", "v1"), true, nil)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Return(nil).Times(1)

	rec, err := r.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, rec.Stale)
	assert.Equal(t, []string{"B", "C"}, rec.Outdated)
	assert.Equal(t, versions("A", "v1", "B", "v2", "C", "v1"), rec.Remote)
	assert.True(t, rec.Purged)
}

func TestCheck_NoCachedSet_AlwaysStale(t *testing.T) {
	r, st, rs := newTestReconciler(t, false)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(models.VersionSet{}, nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(nil, false, nil)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Return(nil)

	rec, err := r.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, rec.Stale)
	assert.Empty(t, rec.Outdated)
}

func TestCheck_InvalidateOnCommit_DefersPurge(t *testing.T) {
	r, st, rs := newTestReconciler(t, true)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v2"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1"), true, nil)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Times(0)

	rec, err := r.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, rec.Stale)
	assert.False(t, rec.Purged)
	assert.Equal(t, []string{"A"}, rec.Outdated)
}

func TestCheck_PurgeFailure_Aborts(t *testing.T) {
	r, st, rs := newTestReconciler(t, false)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v2"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1"), true, nil)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Return(errors.New("readonly database"))

	_, err := r.Check(context.Background())

	assert.ErrorIs(t, err, ErrReconciliationAbort)
}

func TestCheck_CacheLoadFailure_Aborts(t *testing.T) {
	r, st, rs := newTestReconciler(t, false)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v1"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(nil, false, errors.New("no such table"))

	_, err := r.Check(context.Background())

	assert.ErrorIs(t, err, ErrReconciliationAbort)
}

func TestReconciliation_Wanted_PairsOutdatedWithRemoteVersion(t *testing.T) {
	rec := Reconciliation{
		Stale:    true,
		Outdated: []string{"B", "C"},
		Remote:   versions("A", "v1", "B", "v2", "C", "v1"),
	}

	assert.Equal(t, versions("B", "v2", "C", "v1"), rec.Wanted())
	assert.Empty(t, Reconciliation{Remote: versions("A", "v1")}.Wanted())
}
