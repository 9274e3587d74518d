package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/mock"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sharingFixture struct {
	sqlm sqlmock.Sqlmock
	pr   *mock.MockProfileRepository
	cr   *mock.MockConnectionRepository
	svc  SharingService
}

func newSharingFixture(t *testing.T, ctrl *gomock.Controller) *sharingFixture {
	t.Helper()

	conn, sqlm, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	fx := &sharingFixture{
		sqlm: sqlm,
		pr:   mock.NewMockProfileRepository(ctrl),
		cr:   mock.NewMockConnectionRepository(ctrl),
	}
	fx.pr.EXPECT().WithTx(gomock.Any()).Return(fx.pr).AnyTimes()
	fx.cr.EXPECT().WithTx(gomock.Any()).Return(fx.cr).AnyTimes()

	repos := &store.Repositories{Profiles: fx.pr, Connections: fx.cr}
	fx.svc = NewSharingService(store.NewDB(conn, logger.Nop()), repos, logger.Nop())
	return fx
}

func (fx *sharingFixture) expectToggle(t *testing.T, category string, shared bool) {
	t.Helper()
	fx.pr.EXPECT().GetProfile(gomock.Any(), "prof-a").Return(sourceProfileA(), nil)
	fx.cr.EXPECT().UpsertSharingPreference(gomock.Any(), models.SharingPreference{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        category,
		IsShared:        shared,
	}).Return(nil)
}

func TestSetSharing_ToggleOffPurgesMirroredDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSharingFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectCommit()

	fx.expectToggle(t, models.SharingMedical, false)
	fx.cr.EXPECT().ListActiveConnectionsForUser(ctx, "user-a").
		Return([]models.SyncConnection{activeConnection()}, nil)
	fx.pr.EXPECT().ListDetails(ctx, "prof-a", models.DetailCategoryMedical).
		Return([]models.ProfileDetail{
			{ID: "det-1", AccountID: "acc-a", ProfileID: "prof-a", Category: models.DetailCategoryMedical},
			{ID: "det-2", AccountID: "acc-a", ProfileID: "prof-a", Category: models.DetailCategoryMedical},
		}, nil)
	fx.cr.EXPECT().ListMappingsByConnection(ctx, "conn-1").
		Return([]models.DetailSyncMapping{{ConnectionID: "conn-1", SourceDetailID: "det-1", SyncedDetailID: "det-copy-1"}}, nil)

	// only the mirrored one needs purging
	fx.pr.EXPECT().DeleteDetail(ctx, "det-copy-1").Return(nil)
	fx.cr.EXPECT().DeleteMapping(ctx, "conn-1", "det-1").Return(nil)

	require.NoError(t, fx.svc.SetSharing(ctx, "acc-a", models.SharingRequest{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        models.SharingMedical,
		IsShared:        false,
	}))
}

func TestSetSharing_ToggleOnRemirrorsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSharingFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectCommit()

	fx.expectToggle(t, models.SharingMedical, true)
	fx.cr.EXPECT().ListActiveConnectionsForUser(ctx, "user-a").
		Return([]models.SyncConnection{activeConnection()}, nil)
	fx.pr.EXPECT().ListDetails(ctx, "prof-a", models.DetailCategoryMedical).
		Return([]models.ProfileDetail{
			{ID: "det-1", AccountID: "acc-a", ProfileID: "prof-a", Category: models.DetailCategoryMedical, Value: "penicillin"},
			{ID: "det-2", AccountID: "acc-a", ProfileID: "prof-a", Category: models.DetailCategoryMedical, Value: "ibuprofen"},
		}, nil)
	// det-1 is still mapped from before the toggle went off and on again
	fx.cr.EXPECT().ListMappingsByConnection(ctx, "conn-1").
		Return([]models.DetailSyncMapping{{ConnectionID: "conn-1", SourceDetailID: "det-1", SyncedDetailID: "det-copy-1"}}, nil)

	var saved []models.ProfileDetail
	fx.pr.EXPECT().SaveDetail(ctx, gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, d models.ProfileDetail) error {
			saved = append(saved, d)
			return nil
		})
	var mapping models.DetailSyncMapping
	fx.cr.EXPECT().SaveMapping(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.DetailSyncMapping) error {
			mapping = m
			return nil
		})

	require.NoError(t, fx.svc.SetSharing(ctx, "acc-a", models.SharingRequest{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        models.SharingMedical,
		IsShared:        true,
	}))

	require.Len(t, saved, 2)
	assert.Equal(t, "det-copy-1", saved[0].ID) // mapped copy keeps its id
	assert.NotEmpty(t, saved[1].ID)
	assert.Equal(t, "copy-a", saved[0].ProfileID)
	assert.Equal(t, "copy-a", saved[1].ProfileID)

	// only the previously unmapped detail gets a new mapping
	assert.Equal(t, "det-2", mapping.SourceDetailID)
	assert.Equal(t, saved[1].ID, mapping.SyncedDetailID)
}

func TestSetSharing_CoreFieldsOffClearsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSharingFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectCommit()

	fx.expectToggle(t, models.SharingProfileCoreFields, false)
	fx.cr.EXPECT().ListActiveConnectionsForUser(ctx, "user-a").
		Return([]models.SyncConnection{activeConnection()}, nil)
	fx.pr.EXPECT().ClearSharedCoreFields(ctx, "copy-a").Return(nil)

	require.NoError(t, fx.svc.SetSharing(ctx, "acc-a", models.SharingRequest{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        models.SharingProfileCoreFields,
		IsShared:        false,
	}))
}

func TestSetSharing_CoreFieldsOnRestoresCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSharingFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectCommit()

	fx.expectToggle(t, models.SharingProfileCoreFields, true)
	fx.cr.EXPECT().ListActiveConnectionsForUser(ctx, "user-a").
		Return([]models.SyncConnection{activeConnection()}, nil)
	fx.pr.EXPECT().GetProfile(ctx, "copy-a").Return(syncedCopyOfA(), nil)

	var restored models.Profile
	fx.pr.EXPECT().SaveProfile(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Profile) error {
			restored = p
			return nil
		})

	require.NoError(t, fx.svc.SetSharing(ctx, "acc-a", models.SharingRequest{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        models.SharingProfileCoreFields,
		IsShared:        true,
	}))

	require.NotNil(t, restored.Address)
	assert.Equal(t, "12 Elm Street", *restored.Address)
	require.NotNil(t, restored.Phone)
}

func TestSetSharing_NoConnectionStoresPreferenceOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSharingFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectCommit()

	fx.expectToggle(t, models.SharingHobby, false)
	fx.cr.EXPECT().ListActiveConnectionsForUser(ctx, "user-a").Return(nil, nil)

	require.NoError(t, fx.svc.SetSharing(ctx, "acc-a", models.SharingRequest{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        models.SharingHobby,
		IsShared:        false,
	}))
}

func TestSetSharing_ForeignProfileRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSharingFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectRollback()

	fx.pr.EXPECT().GetProfile(ctx, "prof-a").Return(sourceProfileA(), nil)

	err := fx.svc.SetSharing(ctx, "acc-intruder", models.SharingRequest{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        models.SharingMedical,
		IsShared:        false,
	})
	assert.ErrorIs(t, err, ErrAccountMismatch)
}

func TestSetSharing_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newSharingFixture(t, ctrl)

	err := fx.svc.SetSharing(context.Background(), "acc-a", models.SharingRequest{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        "telepathy",
	})
	assert.ErrorIs(t, err, ErrInvalidEntity)
}
