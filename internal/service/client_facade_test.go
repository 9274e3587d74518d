// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/adapter"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/mock"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type facadeFixture struct {
	cache        store.EntityCache
	queue        store.MutationQueue
	remote       *mock.MockRemoteRepository
	connectivity *adapter.StaticConnectivity
}

func newFacadeFixture(t *testing.T, ctrl *gomock.Controller) *facadeFixture {
	t.Helper()

	db, err := store.OpenClientDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &facadeFixture{
		cache:        store.NewEntityCache(db, logger.Nop()),
		queue:        store.NewMutationQueue(db, logger.Nop()),
		remote:       mock.NewMockRemoteRepository(ctrl),
		connectivity: adapter.NewStaticConnectivity(true),
	}
}

func (fx *facadeFixture) medications(t *testing.T, opts ...FacadeOption[models.Medication, *models.Medication]) *Facade[models.Medication, *models.Medication] {
	t.Helper()
	reconciler := NewReconciler(fx.cache, logger.Nop())
	return NewFacade[models.Medication](models.FamilyMedication, fx.cache, fx.queue, fx.remote, fx.connectivity, reconciler, logger.Nop(), opts...)
}

func (fx *facadeFixture) todoLists(t *testing.T) *Facade[models.TodoList, *models.TodoList] {
	t.Helper()
	reconciler := NewReconciler(fx.cache, logger.Nop())
	return NewFacade[models.TodoList](models.FamilyTodoList, fx.cache, fx.queue, fx.remote, fx.connectivity, reconciler, logger.Nop(),
		WithCascade[models.TodoList](models.FamilyTodoItem, "list_id"),
	)
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestFacade_Create_OnlinePushesRemoteFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	ctx := context.Background()

	fx.remote.EXPECT().
		UpsertRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.EntityRecord) (models.EntityRecord, error) {
			return record, nil
		})

	medications := fx.medications(t)
	med := &models.Medication{AccountID: "acc-1", Name: "ibuprofen"}

	require.NoError(t, medications.Create(ctx, med))
	assert.NotEmpty(t, med.ID)
	assert.True(t, med.IsSynced)

	record, err := fx.cache.Get(ctx, models.FamilyMedication, med.ID)
	require.NoError(t, err)
	assert.True(t, record.IsSynced)

	// nothing left for the flush worker
	pending, err := fx.queue.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestFacade_Create_OfflineAssignsIDAndQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	fx.connectivity.Set(false)
	ctx := context.Background()

	medications := fx.medications(t)
	med := &models.Medication{AccountID: "acc-1", Name: "ibuprofen"}

	require.NoError(t, medications.Create(ctx, med))
	assert.NotEmpty(t, med.ID)
	assert.False(t, med.IsSynced)

	record, err := fx.cache.Get(ctx, models.FamilyMedication, med.ID)
	require.NoError(t, err)
	assert.False(t, record.IsSynced)
	assert.False(t, record.LocallyDeleted)

	pending, err := fx.queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.ChangeCreate, pending[0].ChangeType)
	assert.Equal(t, med.ID, pending[0].EntityID)
}

func TestFacade_Create_RemoteDownFallsBackToQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	ctx := context.Background()

	fx.remote.EXPECT().
		UpsertRecord(gomock.Any(), gomock.Any()).
		Return(models.EntityRecord{}, adapter.ErrRemoteUnavailable)

	medications := fx.medications(t)
	med := &models.Medication{AccountID: "acc-1", Name: "ibuprofen"}

	require.NoError(t, medications.Create(ctx, med))
	assert.False(t, med.IsSynced)

	pending, err := fx.queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.ChangeCreate, pending[0].ChangeType)
}

func TestFacade_Create_MissingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)

	err := fx.medications(t).Create(context.Background(), &models.Medication{Name: "no owner"})
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

// ── List / Refresh ──────────────────────────────────────────────────────────

func TestFacade_List_WarmCacheSkipsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	ctx := context.Background()

	require.NoError(t, fx.cache.Save(ctx, models.EntityRecord{
		Family: models.FamilyMedication, EntityID: "med-1", AccountID: "acc-1",
		Payload:  []byte(`{"id":"med-1","account_id":"acc-1","name":"ibuprofen"}`),
		IsSynced: true, LastModifiedAt: time.Now(),
	}))

	// no remote expectations: any fetch fails the test
	listed, err := fx.medications(t).List(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "ibuprofen", listed[0].Name)
}

func TestFacade_List_ColdCacheFetchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	ctx := context.Background()

	snapshot := []models.EntityRecord{
		{
			Family:         models.FamilyMedication,
			EntityID:       "med-1",
			AccountID:      "acc-1",
			Payload:        []byte(`{"id":"med-1","account_id":"acc-1","name":"vitamin d"}`),
			LastModifiedAt: time.Now(),
		},
		{
			Family:         models.FamilyMedication,
			EntityID:       "med-2",
			AccountID:      "acc-2",
			Payload:        []byte(`{"id":"med-2","account_id":"acc-2","name":"someone else's"}`),
			LastModifiedAt: time.Now(),
		},
	}
	fx.remote.EXPECT().
		ListRecords(gomock.Any(), models.FamilyMedication).
		Return(snapshot, nil).
		Times(1)

	medications := fx.medications(t)

	listed, err := medications.List(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "vitamin d", listed[0].Name)
	assert.True(t, listed[0].IsSynced)

	// the fetch seeded the cache: a second list stays local
	listed, err = medications.List(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestFacade_List_ColdCachePreservesLocalTombstone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	ctx := context.Background()

	// deleted locally, deletion not yet pushed
	require.NoError(t, fx.cache.Save(ctx, models.EntityRecord{
		Family: models.FamilyMedication, EntityID: "med-1", AccountID: "acc-1",
		Payload:        []byte(`{"id":"med-1","account_id":"acc-1","name":"ibuprofen"}`),
		LocallyDeleted: true, LastModifiedAt: time.Now(),
	}))

	fx.remote.EXPECT().
		ListRecords(gomock.Any(), models.FamilyMedication).
		Return([]models.EntityRecord{{
			Family:         models.FamilyMedication,
			EntityID:       "med-1",
			AccountID:      "acc-1",
			Payload:        []byte(`{"id":"med-1","account_id":"acc-1","name":"ibuprofen"}`),
			LastModifiedAt: time.Now(),
		}}, nil)

	listed, err := fx.medications(t).List(ctx, "acc-1")
	require.NoError(t, err)
	assert.Empty(t, listed)

	record, err := fx.cache.Get(ctx, models.FamilyMedication, "med-1")
	require.NoError(t, err)
	assert.True(t, record.LocallyDeleted)
}

func TestFacade_List_EmptyCacheRemoteErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)

	fx.remote.EXPECT().
		ListRecords(gomock.Any(), models.FamilyMedication).
		Return(nil, adapter.ErrRemoteUnavailable)

	_, err := fx.medications(t).List(context.Background(), "acc-1")
	assert.ErrorIs(t, err, adapter.ErrRemoteUnavailable)
}

func TestFacade_List_EmptyCacheOfflineReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	fx.connectivity.Set(false)

	listed, err := fx.medications(t).List(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestFacade_Refresh_MergesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	ctx := context.Background()

	fx.remote.EXPECT().
		ListRecords(gomock.Any(), models.FamilyMedication).
		Return([]models.EntityRecord{{
			Family:         models.FamilyMedication,
			EntityID:       "med-1",
			AccountID:      "acc-1",
			Payload:        []byte(`{"id":"med-1","account_id":"acc-1","name":"vitamin d"}`),
			LastModifiedAt: time.Now(),
		}}, nil)

	medications := fx.medications(t)
	require.NoError(t, medications.Refresh(ctx, "acc-1"))

	got, err := medications.Get(ctx, "med-1")
	require.NoError(t, err)
	assert.Equal(t, "vitamin d", got.Name)
	assert.True(t, got.IsSynced)
}

func TestFacade_Refresh_OfflineIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	fx.connectivity.Set(false)

	assert.NoError(t, fx.medications(t).Refresh(context.Background(), "acc-1"))
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestFacade_Update_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)

	err := fx.medications(t).Update(context.Background(), &models.Medication{
		ID: "ghost", AccountID: "acc-1", Name: "nope",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFacade_Update_OnlineMarksSyncedAndClearsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	ctx := context.Background()

	fx.remote.EXPECT().
		UpsertRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.EntityRecord) (models.EntityRecord, error) {
			return record, nil
		}).
		Times(2)

	medications := fx.medications(t)
	med := &models.Medication{AccountID: "acc-1", Name: "ibuprofen"}
	require.NoError(t, medications.Create(ctx, med))

	med.Name = "ibuprofen 400"
	require.NoError(t, medications.Update(ctx, med))
	assert.True(t, med.IsSynced)

	got, err := medications.Get(ctx, med.ID)
	require.NoError(t, err)
	assert.Equal(t, "ibuprofen 400", got.Name)
	assert.True(t, got.IsSynced)

	pending, err := fx.queue.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestFacade_Update_RemoteDownStaysQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	fx.connectivity.Set(false)
	ctx := context.Background()

	medications := fx.medications(t)
	med := &models.Medication{AccountID: "acc-1", Name: "ibuprofen"}
	require.NoError(t, medications.Create(ctx, med))
	require.NoError(t, fx.cache.MarkSynced(ctx, models.FamilyMedication, med.ID))

	fx.connectivity.Set(true)
	fx.remote.EXPECT().
		UpsertRecord(gomock.Any(), gomock.Any()).
		Return(models.EntityRecord{}, adapter.ErrRemoteUnavailable)

	med.Name = "ibuprofen 400"
	require.NoError(t, medications.Update(ctx, med))

	got, err := medications.Get(ctx, med.ID)
	require.NoError(t, err)
	assert.Equal(t, "ibuprofen 400", got.Name)
	assert.False(t, got.IsSynced)

	pending, err := fx.queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, models.ChangeUpdate, pending[1].ChangeType)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestFacade_Delete_OnlineConfirmsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, fx.cache.Save(ctx,
		models.EntityRecord{Family: models.FamilyTodoList, EntityID: "list-1", AccountID: "acc-1",
			Payload: []byte(`{"id":"list-1","account_id":"acc-1","title":"groceries"}`), IsSynced: true, LastModifiedAt: now},
		models.EntityRecord{Family: models.FamilyTodoItem, EntityID: "item-1", AccountID: "acc-1",
			Payload: []byte(`{"id":"item-1","account_id":"acc-1","list_id":"list-1","text":"milk"}`), IsSynced: true, LastModifiedAt: now},
	))

	gomock.InOrder(
		fx.remote.EXPECT().DeleteRecord(gomock.Any(), models.FamilyTodoList, "list-1").Return(nil),
		fx.remote.EXPECT().DeleteRecord(gomock.Any(), models.FamilyTodoItem, "item-1").Return(nil),
	)

	require.NoError(t, fx.todoLists(t).Delete(ctx, "list-1"))

	// confirmed rows are pruned, not tombstoned
	_, err := fx.cache.Get(ctx, models.FamilyTodoList, "list-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = fx.cache.Get(ctx, models.FamilyTodoItem, "item-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	pending, err := fx.queue.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestFacade_Delete_OfflineCascadeQueuesChildDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	fx.connectivity.Set(false)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, fx.cache.Save(ctx,
		models.EntityRecord{Family: models.FamilyTodoList, EntityID: "list-1", AccountID: "acc-1",
			Payload: []byte(`{"id":"list-1","account_id":"acc-1","title":"groceries"}`), IsSynced: true, LastModifiedAt: now},
		models.EntityRecord{Family: models.FamilyTodoItem, EntityID: "item-1", AccountID: "acc-1",
			Payload: []byte(`{"id":"item-1","account_id":"acc-1","list_id":"list-1","text":"milk"}`), IsSynced: true, LastModifiedAt: now},
	))

	require.NoError(t, fx.todoLists(t).Delete(ctx, "list-1"))

	parent, err := fx.cache.Get(ctx, models.FamilyTodoList, "list-1")
	require.NoError(t, err)
	assert.True(t, parent.LocallyDeleted)

	child, err := fx.cache.Get(ctx, models.FamilyTodoItem, "item-1")
	require.NoError(t, err)
	assert.True(t, child.LocallyDeleted)

	pending, err := fx.queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "list-1", pending[0].EntityID)
	assert.Equal(t, models.ChangeDelete, pending[0].ChangeType)
	assert.Equal(t, "item-1", pending[1].EntityID)
	assert.Equal(t, models.ChangeDelete, pending[1].ChangeType)
}

func TestFacade_Delete_TombstoneReadsAsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fx := newFacadeFixture(t, ctrl)
	fx.connectivity.Set(false)
	ctx := context.Background()

	medications := fx.medications(t)
	med := &models.Medication{AccountID: "acc-1", Name: "ibuprofen"}
	require.NoError(t, medications.Create(ctx, med))
	require.NoError(t, medications.Delete(ctx, med.ID))

	_, err := medications.Get(ctx, med.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// double delete is NotFound, not a silent success
	assert.ErrorIs(t, medications.Delete(ctx, med.ID), ErrNotFound)
}
