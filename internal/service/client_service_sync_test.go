// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-observer-sync/internal/adapter"
	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/mock"
	"github.com/MKhiriev/go-observer-sync/models"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func defaultSyncConfig() config.ClientSync {
	return config.ClientSync{
		RecordKinds:     []string{string(models.KindBranchDetails)},
		CancelOnFailure: true,
	}
}

func newTestOrchestrator(t *testing.T, cfg config.ClientSync) (SyncOrchestrator, *mock.MockLocalStore, *mock.MockRemoteService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mock.NewMockLocalStore(ctrl)
	rs := mock.NewMockRemoteService(ctrl)

	svc := NewClientServices(st, rs, cfg, nil, logger.Nop())
	return svc.Orchestrator, st, rs
}

func expectNothingToUpload(st *mock.MockLocalStore) {
	expectQueues(st, nil, nil, nil)
}

// outcomeRecorder is a CompletionFunc that keeps every outcome it receives.
type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []models.SyncOutcome
}

func (r *outcomeRecorder) notify(o models.SyncOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func (r *outcomeRecorder) all() []models.SyncOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SyncOutcome(nil), r.outcomes...)
}

// ── RunFullSync ──────────────────────────────────────────────────────────────

func TestRunFullSync_Unchanged_Noop(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	expectNothingToUpload(st)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v1"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1"), true, nil)

	rec := &outcomeRecorder{}
	outcome, err := o.RunFullSync(context.Background(), rec.notify)

	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusNoop, outcome.Status)
	assert.Equal(t, models.SyncModeFull, outcome.Mode)
	assert.Zero(t, outcome.Fetch.Issued)
	require.Len(t, rec.all(), 1)
	assert.Equal(t, models.SyncStatusNoop, rec.all()[0].Status)
	assert.Equal(t, StateIdle, o.State())
}

func TestRunFullSync_ChangedSet_FetchesOutdatedAndCommits(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	expectNothingToUpload(st)

	remote := versions("A", "v1", "B", "v2", "C", "v1")
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(remote, nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1", "B", "v1"), true, nil)
	purge := st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Return(nil).Times(1)

	fetchB := rs.EXPECT().FetchReferenceItem(gomock.Any(), "B").Return(form("B", "v2"), nil).After(purge)
	fetchC := rs.EXPECT().FetchReferenceItem(gomock.Any(), "C").Return(form("C", "v1"), nil).After(purge)
	saveB := st.EXPECT().SaveReferenceItem(gomock.Any(), form("B", "v2")).Return(nil).After(fetchB)
	saveC := st.EXPECT().SaveReferenceItem(gomock.Any(), form("C", "v1")).Return(nil).After(fetchC)
	st.EXPECT().CommitVersionSet(gomock.Any(), remote).Return(nil).After(saveB).After(saveC)

	rec := &outcomeRecorder{}
	outcome, err := o.RunFullSync(context.Background(), rec.notify)

	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusRefreshed, outcome.Status)
	assert.Equal(t, 2, outcome.Fetch.Issued)
	assert.Equal(t, 2, outcome.Fetch.Resolved)
	require.Len(t, rec.all(), 1)
	assert.Equal(t, models.SyncStatusRefreshed, rec.all()[0].Status)
}

func TestRunFullSync_FetchFailure_PurgedButNotCommitted(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	expectNothingToUpload(st)

	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v1", "B", "v2"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1", "B", "v1"), true, nil)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Return(nil).Times(1)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "B").Return(models.ReferenceItem{}, errTransport)
	st.EXPECT().CommitVersionSet(gomock.Any(), gomock.Any()).Times(0)

	rec := &outcomeRecorder{}
	outcome, err := o.RunFullSync(context.Background(), rec.notify)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchSetFailure)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, models.SyncStatusFailed, outcome.Status)
	require.Len(t, rec.all(), 1)
	assert.True(t, rec.all()[0].Failed())
}

func TestRunFullSync_InvalidateOnCommit_PurgesRightBeforeCommit(t *testing.T) {
	cfg := defaultSyncConfig()
	cfg.InvalidateOnCommit = true
	o, st, rs := newTestOrchestrator(t, cfg)
	expectNothingToUpload(st)

	remote := versions("A", "v2")
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(remote, nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1"), true, nil)
	save := st.EXPECT().SaveReferenceItem(gomock.Any(), form("A", "v2")).Return(nil)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "A").Return(form("A", "v2"), nil)
	purge := st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Return(nil).After(save)
	st.EXPECT().CommitVersionSet(gomock.Any(), remote).Return(nil).After(purge)

	outcome, err := o.RunFullSync(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusRefreshed, outcome.Status)
}

func TestRunFullSync_InvalidateOnCommit_FailedFetchKeepsAnswers(t *testing.T) {
	cfg := defaultSyncConfig()
	cfg.InvalidateOnCommit = true
	o, st, rs := newTestOrchestrator(t, cfg)
	expectNothingToUpload(st)

	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v2"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1"), true, nil)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "A").Return(models.ReferenceItem{}, errTransport)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Times(0)
	st.EXPECT().CommitVersionSet(gomock.Any(), gomock.Any()).Times(0)

	outcome, err := o.RunFullSync(context.Background(), nil)

	assert.ErrorIs(t, err, ErrFetchSetFailure)
	assert.True(t, outcome.Failed())
}

func TestRunFullSync_VersionFetchFailure_Aborts(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	expectNothingToUpload(st)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(nil, errTransport)

	rec := &outcomeRecorder{}
	outcome, err := o.RunFullSync(context.Background(), rec.notify)

	assert.ErrorIs(t, err, ErrReconciliationAbort)
	assert.Equal(t, models.SyncStatusFailed, outcome.Status)
	assert.Equal(t, outcome.Err, err)
	require.Len(t, rec.all(), 1)
}

func TestRunFullSync_CommitFailure(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	expectNothingToUpload(st)

	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v1"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(nil, false, nil)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Return(nil)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "A").Return(form("A", "v1"), nil)
	st.EXPECT().SaveReferenceItem(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().CommitVersionSet(gomock.Any(), gomock.Any()).Return(errors.New("constraint failed"))

	outcome, err := o.RunFullSync(context.Background(), nil)

	assert.ErrorIs(t, err, ErrCommitVersionSet)
	assert.True(t, outcome.Failed())
}

func TestRunFullSync_UploadFailureDoesNotFailRound(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	b1 := record(models.KindBranchDetails, "b1")
	expectQueues(st, []models.SyncableRecord{b1}, nil, nil)
	rs.EXPECT().PushRecord(gomock.Any(), models.KindBranchDetails, b1.Payload).Return(errTransport)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v1"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1"), true, nil)

	outcome, err := o.RunFullSync(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusNoop, outcome.Status)
	assert.Equal(t, 1, outcome.Upload.Failed())
	assert.ErrorIs(t, UploadError(outcome.Upload), ErrPartialUploadFailure)
}

func TestRunFullSync_CancelledContext_Fails(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, defaultSyncConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &outcomeRecorder{}
	outcome, err := o.RunFullSync(ctx, rec.notify)

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, outcome.Failed())
	require.Len(t, rec.all(), 1)
	assert.Equal(t, StateIdle, o.State())
}

// ── RunUploadOnly ────────────────────────────────────────────────────────────

func TestRunUploadOnly_NeverReconciles(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	n1 := record(models.KindNote, "n1")
	expectQueues(st, nil, nil, []models.SyncableRecord{n1})
	rs.EXPECT().PushNote(gomock.Any(), n1.Payload).Return(nil)
	st.EXPECT().DeleteNote(gomock.Any(), n1).Return(nil)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Times(0)

	rec := &outcomeRecorder{}
	outcome, err := o.RunUploadOnly(context.Background(), rec.notify)

	require.NoError(t, err)
	assert.Equal(t, models.SyncModeUpload, outcome.Mode)
	assert.Equal(t, models.SyncStatusNoop, outcome.Status)
	assert.Equal(t, 1, outcome.Upload.Succeeded())
	assert.False(t, outcome.FinishedAt.Before(outcome.StartedAt))
	require.Len(t, rec.all(), 1)
}

// ── re-entrancy ──────────────────────────────────────────────────────────────

// blockingUploader holds UploadAll until release is closed.
type blockingUploader struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
	calls   atomic.Int32
}

func newBlockingUploader() *blockingUploader {
	return &blockingUploader{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingUploader) UploadAll(ctx context.Context) models.UploadReport {
	b.calls.Add(1)
	b.once.Do(func() { close(b.started) })
	<-b.release
	return models.UploadReport{}
}

func newBlockedOrchestrator(t *testing.T) (SyncOrchestrator, *blockingUploader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mock.NewMockLocalStore(ctrl)
	rs := mock.NewMockRemoteService(ctrl)
	cfg := defaultSyncConfig()

	up := newBlockingUploader()
	o := NewSyncOrchestrator(st, up,
		NewVersionReconciler(st, rs, cfg, logger.Nop()),
		NewFetchCoordinator(st, rs, cfg, logger.Nop()),
		logger.Nop())
	return o, up
}

func TestRun_ReentrantCallRejected(t *testing.T) {
	o, up := newBlockedOrchestrator(t)
	first, second := &outcomeRecorder{}, &outcomeRecorder{}

	done := make(chan error, 1)
	go func() {
		_, err := o.RunUploadOnly(context.Background(), first.notify)
		done <- err
	}()
	<-up.started
	assert.Equal(t, StateUploading, o.State())

	_, err := o.RunFullSync(context.Background(), second.notify)
	assert.ErrorIs(t, err, ErrSyncInProgress)
	_, err = o.RunUploadOnly(context.Background(), second.notify)
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(up.release)
	require.NoError(t, <-done)

	assert.Len(t, first.all(), 1)
	assert.Empty(t, second.all())
	assert.Equal(t, int32(1), up.calls.Load())
	assert.Equal(t, StateIdle, o.State())
}

func TestRun_ConcurrentCallers_ExactlyOneAccepted(t *testing.T) {
	const callers = 16
	o, up := newBlockedOrchestrator(t)
	rec := &outcomeRecorder{}

	var rejected, accepted atomic.Int32
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.RunUploadOnly(context.Background(), rec.notify)
			if errors.Is(err, ErrSyncInProgress) {
				rejected.Add(1)
				return
			}
			accepted.Add(1)
		}()
	}

	require.Eventually(t, func() bool { return rejected.Load() == callers-1 }, 2*time.Second, time.Millisecond)
	close(up.release)
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, int32(1), up.calls.Load())
	assert.Len(t, rec.all(), 1)
}

func TestRun_NotifyAfterStateReturnsToIdle(t *testing.T) {
	o, st, _ := newTestOrchestrator(t, defaultSyncConfig())
	expectNothingToUpload(st)

	var stateAtNotify SyncState = -1
	_, err := o.RunUploadOnly(context.Background(), func(models.SyncOutcome) {
		stateAtNotify = o.State()
	})

	require.NoError(t, err)
	assert.Equal(t, StateIdle, stateAtNotify)
}

func TestRun_NextRoundAcceptedAfterFailure(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	st.EXPECT().UnsyncedRecords(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	st.EXPECT().UnsyncedAnswers(gomock.Any()).Return(nil, nil).Times(2)
	st.EXPECT().Notes(gomock.Any()).Return(nil, nil).Times(2)
	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(nil, errTransport)

	_, err := o.RunFullSync(context.Background(), nil)
	require.ErrorIs(t, err, ErrReconciliationAbort)

	outcome, err := o.RunUploadOnly(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusNoop, outcome.Status)
}

func TestSyncState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "uploading", StateUploading.String())
	assert.Equal(t, "reconciling", StateReconciling.String())
	assert.Equal(t, "fetching", StateFetching.String())
	assert.Equal(t, "SyncState(9)", SyncState(9).String())
}

func TestRunFullSync_ServedVersionDiffers_NotCommitted(t *testing.T) {
	o, st, rs := newTestOrchestrator(t, defaultSyncConfig())
	expectNothingToUpload(st)

	rs.EXPECT().FetchVersionSet(gomock.Any()).Return(versions("A", "v2"), nil)
	st.EXPECT().CachedVersionSet(gomock.Any()).Return(versions("A", "v1"), true, nil)
	st.EXPECT().PurgeAnswersAndNotes(gomock.Any()).Return(nil)
	rs.EXPECT().FetchReferenceItem(gomock.Any(), "A").Return(form("A", "v1"), nil)
	st.EXPECT().SaveReferenceItem(gomock.Any(), gomock.Any()).Times(0)
	st.EXPECT().CommitVersionSet(gomock.Any(), gomock.Any()).Times(0)

	outcome, err := o.RunFullSync(context.Background(), nil)

	require.ErrorIs(t, err, ErrReferenceVersionMismatch)
	assert.ErrorIs(t, err, ErrFetchSetFailure)
	assert.Equal(t, models.SyncStatusFailed, outcome.Status)
}
