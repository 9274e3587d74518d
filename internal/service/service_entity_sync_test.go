package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/mock"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type entitySyncFixture struct {
	entities   *mock.MockEntityRepository
	profiles   *mock.MockProfileRepository
	profileSvc *mock.MockProfileService
	svc        EntitySyncService
}

func newEntitySyncFixture(t *testing.T, ctrl *gomock.Controller) *entitySyncFixture {
	t.Helper()

	fx := &entitySyncFixture{
		entities:   mock.NewMockEntityRepository(ctrl),
		profiles:   mock.NewMockProfileRepository(ctrl),
		profileSvc: mock.NewMockProfileService(ctrl),
	}
	repos := &store.Repositories{Entities: fx.entities, Profiles: fx.profiles}
	fx.svc = NewEntitySyncService(repos, fx.profileSvc, logger.Nop())
	return fx
}

func TestUpsert_GenericFamilyGoesToEntityStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)
	ctx := context.Background()

	record := models.EntityRecord{
		Family:         models.FamilyMedication,
		EntityID:       "med-1",
		AccountID:      "acc-1",
		Payload:        []byte(`{"id":"med-1","account_id":"acc-1","name":"ibuprofen"}`),
		LastModifiedAt: time.Now(),
	}

	acked := record
	acked.IsSynced = true
	fx.entities.EXPECT().UpsertEntity(ctx, record).Return(acked, nil)

	saved, err := fx.svc.Upsert(ctx, "acc-1", record)
	require.NoError(t, err)
	assert.True(t, saved.IsSynced)
	assert.Equal(t, "med-1", saved.EntityID)
}

func TestUpsert_ProfileFamilyRunsPropagation(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)
	ctx := context.Background()

	profile := models.Profile{ID: "prof-1", AccountID: "acc-1", UserID: "user-1", Name: "Agnes"}
	payload, err := json.Marshal(&profile)
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	record := models.EntityRecord{
		Family:         models.FamilyProfile,
		EntityID:       "prof-1",
		AccountID:      "acc-1",
		Payload:        payload,
		LastModifiedAt: now,
	}

	expected := profile
	expected.SyncMeta = models.SyncMeta{LastModifiedAt: now}
	fx.profileSvc.EXPECT().SaveProfile(ctx, expected).Return(nil)

	saved, err := fx.svc.Upsert(ctx, "acc-1", record)
	require.NoError(t, err)
	assert.True(t, saved.IsSynced)
	assert.Equal(t, "prof-1", saved.EntityID)
	assert.Equal(t, models.FamilyProfile, saved.Family)
}

func TestUpsert_AccountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)

	_, err := fx.svc.Upsert(context.Background(), "acc-1", models.EntityRecord{
		Family:    models.FamilyMedication,
		EntityID:  "med-1",
		AccountID: "acc-other",
		Payload:   []byte(`{}`),
	})
	assert.ErrorIs(t, err, ErrAccountMismatch)
}

func TestDelete_ProfileOwnershipEnforced(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)
	ctx := context.Background()

	fx.profiles.EXPECT().GetProfile(ctx, "prof-1").
		Return(models.Profile{ID: "prof-1", AccountID: "acc-other", UserID: "user-x"}, nil)

	err := fx.svc.Delete(ctx, models.FamilyProfile, "prof-1", "acc-1")
	assert.ErrorIs(t, err, ErrAccountMismatch)
}

func TestDelete_UnknownProfileIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)
	ctx := context.Background()

	fx.profiles.EXPECT().GetProfile(ctx, "ghost").Return(models.Profile{}, store.ErrNotFound)

	require.NoError(t, fx.svc.Delete(ctx, models.FamilyProfile, "ghost", "acc-1"))
}

func TestDelete_DetailDispatchesToProfileService(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)
	ctx := context.Background()

	fx.profiles.EXPECT().GetDetail(ctx, "det-1").
		Return(models.ProfileDetail{ID: "det-1", AccountID: "acc-1", ProfileID: "prof-1"}, nil)
	fx.profileSvc.EXPECT().DeleteDetail(ctx, "det-1").Return(nil)

	require.NoError(t, fx.svc.Delete(ctx, models.FamilyProfileDetail, "det-1", "acc-1"))
}

func TestDelete_GenericFamilyScopedToAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)
	ctx := context.Background()

	fx.entities.EXPECT().DeleteEntity(ctx, models.FamilyTodoItem, "item-1", "acc-1").Return(nil)

	require.NoError(t, fx.svc.Delete(ctx, models.FamilyTodoItem, "item-1", "acc-1"))
}

func TestSnapshot_ProfileFamilyFromProfileStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)
	ctx := context.Background()

	fx.profiles.EXPECT().ListProfiles(ctx, "acc-1").Return([]models.Profile{
		{ID: "prof-1", AccountID: "acc-1", UserID: "user-1", Name: "Agnes", IsPrimary: true},
		{ID: "prof-2", AccountID: "acc-1", UserID: "user-kid", Name: "Kid"},
	}, nil)

	records, err := fx.svc.Snapshot(ctx, models.FamilyProfile, "acc-1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "prof-1", records[0].EntityID)
	assert.True(t, records[0].IsSynced)
	assert.False(t, records[0].LastModifiedAt.IsZero())

	var decoded models.Profile
	require.NoError(t, json.Unmarshal(records[0].Payload, &decoded))
	assert.Equal(t, "Agnes", decoded.Name)
	assert.True(t, decoded.IsPrimary)
}

func TestSnapshot_GenericFamilyFromEntityStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newEntitySyncFixture(t, ctrl)
	ctx := context.Background()

	fx.entities.EXPECT().ListEntities(ctx, models.FamilyContact, "acc-1").
		Return([]models.EntityRecord{{Family: models.FamilyContact, EntityID: "con-1", AccountID: "acc-1", IsSynced: true}}, nil)

	records, err := fx.svc.Snapshot(ctx, models.FamilyContact, "acc-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "con-1", records[0].EntityID)
}
