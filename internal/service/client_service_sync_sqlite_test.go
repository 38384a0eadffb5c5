// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/mock"
	"github.com/MKhiriev/go-observer-sync/internal/store"
	"github.com/MKhiriev/go-observer-sync/models"
)

func sqliteTestContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newSQLiteLocalStore(t *testing.T) store.LocalStore {
	t.Helper()
	ctx := sqliteTestContext()

	db, err := store.NewConnectSQLite(ctx, config.ClientDB{DSN: filepath.Join(t.TempDir(), "observer.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return store.NewLocalStore(db, logger.Nop())
}

func cachedSet(t *testing.T, st store.LocalStore) models.VersionSet {
	t.Helper()
	set, ok, err := st.CachedVersionSet(sqliteTestContext())
	require.NoError(t, err)
	require.True(t, ok)
	return set.Normalize()
}

// A failed fetch leaves the cached version set untouched, so the next round
// sees the same difference and downloads every outdated item again.
func TestRunFullSync_SQLite_FailedRoundRetriedNextRound(t *testing.T) {
	ctx := sqliteTestContext()
	st := newSQLiteLocalStore(t)
	rs := mock.NewMockRemoteService(gomock.NewController(t))
	cfg := defaultSyncConfig()
	cfg.CancelOnFailure = false
	o := NewClientServices(st, rs, cfg, nil, logger.Nop()).Orchestrator

	seeded := versions("A", "v1", "B", "v1")
	require.NoError(t, st.CommitVersionSet(ctx, seeded))
	remote := versions("A", "v1", "B", "v2", "C", "v1")

	// round 1: C fails
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(remote, nil)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "B").Return(form("B", "v2"), nil)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "C").Return(models.ReferenceItem{}, errTransport)

	first, err := o.RunFullSync(ctx, nil)

	require.ErrorIs(t, err, ErrFetchSetFailure)
	assert.Equal(t, models.SyncStatusFailed, first.Status)
	assert.Equal(t, 2, first.Fetch.Issued)
	assert.Equal(t, seeded.Normalize(), cachedSet(t, st))

	// round 2: B and C are fetched again and the remote set is committed
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(remote, nil)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "B").Return(form("B", "v2"), nil)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "C").Return(form("C", "v1"), nil)

	second, err := o.RunFullSync(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusRefreshed, second.Status)
	assert.NoError(t, second.Err)
	assert.Equal(t, 2, second.Fetch.Issued)
	assert.True(t, second.Fetch.AllSucceeded())
	assert.Equal(t, remote.Normalize(), cachedSet(t, st))

	item, err := st.ReferenceItem(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, "v1", item.Version)
}
