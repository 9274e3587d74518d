package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/models"
)

func newTestCache(t *testing.T) EntityCache {
	t.Helper()

	cache, _ := newTestClientStore(t)
	return cache
}

func newTestClientStore(t *testing.T) (EntityCache, MutationQueue) {
	t.Helper()

	db, err := OpenClientDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewEntityCache(db, logger.Nop()), NewMutationQueue(db, logger.Nop())
}

func rec(family, id, account string, payload map[string]any, synced, deleted bool) models.EntityRecord {
	raw, _ := json.Marshal(payload)
	return models.EntityRecord{
		Family:         family,
		EntityID:       id,
		AccountID:      account,
		Payload:        raw,
		IsSynced:       synced,
		LocallyDeleted: deleted,
		LastModifiedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestEntityCache_SaveAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	saved := rec(models.FamilyAppointment, "apt-1", "acc-1", map[string]any{"title": "dentist"}, false, false)
	require.NoError(t, cache.Save(ctx, saved))

	got, err := cache.Get(ctx, models.FamilyAppointment, "apt-1")
	require.NoError(t, err)

	assert.Equal(t, "apt-1", got.EntityID)
	assert.Equal(t, "acc-1", got.AccountID)
	assert.False(t, got.IsSynced)
	assert.JSONEq(t, string(saved.Payload), string(got.Payload))
}

func TestEntityCache_Get_NotFound(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), models.FamilyAppointment, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntityCache_Save_UpsertOverwrites(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, rec(models.FamilyContact, "c-1", "acc-1", map[string]any{"name": "old"}, false, false)))
	require.NoError(t, cache.Save(ctx, rec(models.FamilyContact, "c-1", "acc-1", map[string]any{"name": "new"}, true, false)))

	got, err := cache.Get(ctx, models.FamilyContact, "c-1")
	require.NoError(t, err)
	assert.True(t, got.IsSynced)
	assert.Contains(t, string(got.Payload), "new")
}

func TestEntityCache_List_ScopesAndFiltersTombstones(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx,
		rec(models.FamilyMedication, "m-1", "acc-1", map[string]any{"name": "a"}, true, false),
		rec(models.FamilyMedication, "m-2", "acc-1", map[string]any{"name": "b"}, true, true),
		rec(models.FamilyMedication, "m-3", "acc-2", map[string]any{"name": "c"}, true, false),
	))

	live, err := cache.List(ctx, models.FamilyMedication, "acc-1", false)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "m-1", live[0].EntityID)

	all, err := cache.List(ctx, models.FamilyMedication, "acc-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEntityCache_SaveQueued_CommitsRowAndQueueEntryTogether(t *testing.T) {
	cache, queue := newTestClientStore(t)
	ctx := context.Background()

	saved := rec(models.FamilyMedication, "m-1", "acc-1", map[string]any{"name": "ibuprofen"}, false, false)
	mutationID, err := cache.SaveQueued(ctx, saved, models.ChangeCreate)
	require.NoError(t, err)
	assert.Positive(t, mutationID)

	got, err := cache.Get(ctx, models.FamilyMedication, "m-1")
	require.NoError(t, err)
	assert.False(t, got.IsSynced)

	pending, err := queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, mutationID, pending[0].ID)
	assert.Equal(t, models.ChangeCreate, pending[0].ChangeType)
	assert.Equal(t, "m-1", pending[0].EntityID)
	assert.Equal(t, "acc-1", pending[0].AccountID)
}

func TestEntityCache_SaveQueued_UnknownFamilyLeavesQueueEmpty(t *testing.T) {
	cache, queue := newTestClientStore(t)
	ctx := context.Background()

	_, err := cache.SaveQueued(ctx, rec("dragons", "d-1", "acc-1", map[string]any{}, false, false), models.ChangeCreate)
	assert.ErrorIs(t, err, ErrUnknownFamily)

	pending, err := queue.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestEntityCache_SoftDelete_CascadesAndEnqueuesTogether(t *testing.T) {
	cache, queue := newTestClientStore(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx,
		rec(models.FamilyTodoList, "list-1", "acc-1", map[string]any{"title": "groceries"}, true, false),
		rec(models.FamilyTodoItem, "item-1", "acc-1", map[string]any{"list_id": "list-1", "text": "milk"}, true, false),
		rec(models.FamilyTodoItem, "item-2", "acc-1", map[string]any{"list_id": "other", "text": "keep"}, true, false),
	))

	cascades := []Cascade{{ChildFamily: models.FamilyTodoItem, ParentField: "list_id"}}
	mutations, err := cache.SoftDelete(ctx, models.FamilyTodoList, "list-1", cascades, time.Now())
	require.NoError(t, err)
	require.Len(t, mutations, 2)
	assert.Equal(t, "list-1", mutations[0].EntityID)
	assert.Equal(t, models.ChangeDelete, mutations[0].ChangeType)
	assert.Equal(t, "item-1", mutations[1].EntityID)
	assert.Equal(t, "acc-1", mutations[1].AccountID)

	parent, err := cache.Get(ctx, models.FamilyTodoList, "list-1")
	require.NoError(t, err)
	assert.True(t, parent.LocallyDeleted)
	assert.False(t, parent.IsSynced)

	child, err := cache.Get(ctx, models.FamilyTodoItem, "item-1")
	require.NoError(t, err)
	assert.True(t, child.LocallyDeleted)

	untouched, err := cache.Get(ctx, models.FamilyTodoItem, "item-2")
	require.NoError(t, err)
	assert.False(t, untouched.LocallyDeleted)

	// the queue entries landed in the same commit, ids matching
	pending, err := queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, mutations[0].ID, pending[0].ID)
	assert.Equal(t, mutations[1].ID, pending[1].ID)
}

func TestEntityCache_SoftDelete_NotFound(t *testing.T) {
	cache, queue := newTestClientStore(t)

	_, err := cache.SoftDelete(context.Background(), models.FamilyTodoList, "ghost", nil, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)

	pending, err := queue.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestEntityCache_Sweep_RespectsRetentionAndSyncState(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	old := rec(models.FamilyMood, "old-synced", "acc-1", map[string]any{}, true, true)
	old.LastModifiedAt = time.Now().Add(-48 * time.Hour)
	oldUnsynced := rec(models.FamilyMood, "old-unsynced", "acc-1", map[string]any{}, false, true)
	oldUnsynced.LastModifiedAt = time.Now().Add(-48 * time.Hour)
	fresh := rec(models.FamilyMood, "fresh", "acc-1", map[string]any{}, true, true)

	require.NoError(t, cache.Save(ctx, old, oldUnsynced, fresh))

	pruned, err := cache.Sweep(ctx, models.FamilyMood, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, pruned)

	// unsynced tombstone survives: its deletion was never confirmed pushed
	_, err = cache.Get(ctx, models.FamilyMood, "old-unsynced")
	assert.NoError(t, err)

	_, err = cache.Get(ctx, models.FamilyMood, "old-synced")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntityCache_UnknownFamily(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.List(context.Background(), "dragons", "acc-1", false)
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

// TestEntityCache_SurvivesReopen verifies that a client-generated id is
// stable across a process restart (same database file reopened).
func TestEntityCache_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	db, err := OpenClientDB(path)
	require.NoError(t, err)
	cache := NewEntityCache(db, logger.Nop())
	require.NoError(t, cache.Save(ctx, rec(models.FamilyCountdown, "cd-1", "acc-1", map[string]any{"title": "visit"}, false, false)))
	require.NoError(t, db.Close())

	db, err = OpenClientDB(path)
	require.NoError(t, err)
	defer db.Close()
	cache = NewEntityCache(db, logger.Nop())

	got, err := cache.Get(ctx, models.FamilyCountdown, "cd-1")
	require.NoError(t, err)
	assert.Equal(t, "cd-1", got.EntityID)
	assert.False(t, got.IsSynced)
}

func TestMutationQueue_OrderAndDequeue(t *testing.T) {
	db, err := OpenClientDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	queue := NewMutationQueue(db, logger.Nop())
	ctx := context.Background()

	for i, change := range []models.ChangeType{models.ChangeCreate, models.ChangeUpdate, models.ChangeDelete} {
		require.NoError(t, queue.Enqueue(ctx, models.Mutation{
			Family:     models.FamilyReminder,
			EntityID:   "r-1",
			AccountID:  "acc-1",
			ChangeType: change,
			EnqueuedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	pending, err := queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, models.ChangeCreate, pending[0].ChangeType)
	assert.Equal(t, models.ChangeUpdate, pending[1].ChangeType)
	assert.Equal(t, models.ChangeDelete, pending[2].ChangeType)

	require.NoError(t, queue.Dequeue(ctx, pending[0].ID))

	pending, err = queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, models.ChangeUpdate, pending[0].ChangeType)
}
