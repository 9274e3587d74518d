package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/mock"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type connectionFixture struct {
	sqlm sqlmock.Sqlmock
	pr   *mock.MockProfileRepository
	cr   *mock.MockConnectionRepository
	svc  ConnectionService
}

func newConnectionFixture(t *testing.T, ctrl *gomock.Controller) *connectionFixture {
	t.Helper()

	conn, sqlm, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	fx := &connectionFixture{
		sqlm: sqlm,
		pr:   mock.NewMockProfileRepository(ctrl),
		cr:   mock.NewMockConnectionRepository(ctrl),
	}
	fx.pr.EXPECT().WithTx(gomock.Any()).Return(fx.pr).AnyTimes()
	fx.cr.EXPECT().WithTx(gomock.Any()).Return(fx.cr).AnyTimes()

	repos := &store.Repositories{Profiles: fx.pr, Connections: fx.cr}
	fx.svc = NewConnectionService(store.NewDB(conn, logger.Nop()), repos, logger.Nop())
	return fx
}

// ── AcceptInvitation ────────────────────────────────────────────────────────

func TestAcceptInvitation_BuildsConnectionAndMirrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newConnectionFixture(t, ctrl)
	ctx := context.Background()

	inviterAddress := "12 Elm Street"
	inviterPrimary := models.Profile{
		ID: "prof-a", AccountID: "acc-a", UserID: "user-a",
		IsPrimary: true, Name: "Agnes", Address: &inviterAddress,
	}
	inviteePrimary := models.Profile{
		ID: "prof-b", AccountID: "acc-b", UserID: "user-b",
		IsPrimary: true, Name: "Bram",
	}

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectCommit()

	fx.pr.EXPECT().GetPrimaryProfile(ctx, "user-a").Return(inviterPrimary, nil)
	fx.pr.EXPECT().GetPrimaryProfile(ctx, "user-b").Return(inviteePrimary, nil)

	var created models.SyncConnection
	fx.cr.EXPECT().CreateConnection(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.SyncConnection) error {
			created = c
			return nil
		})

	var copies []models.Profile
	fx.pr.EXPECT().SaveProfile(ctx, gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, p models.Profile) error {
			copies = append(copies, p)
			return nil
		})

	fx.cr.EXPECT().UpsertSharingPreference(ctx, models.SharingPreference{
		SourceProfileID: "prof-a",
		TargetUserID:    "user-b",
		Category:        models.SharingGiftIdea,
		IsShared:        false,
	}).Return(nil)

	// inviter details: the medical one mirrors, the gift idea is withheld,
	// the note never leaves its account
	fx.pr.EXPECT().ListDetails(ctx, "prof-a").Return([]models.ProfileDetail{
		{ID: "det-med", AccountID: "acc-a", ProfileID: "prof-a", Category: models.DetailCategoryMedical, Value: "penicillin"},
		{ID: "det-gift", AccountID: "acc-a", ProfileID: "prof-a", Category: models.DetailCategoryGiftIdea, Value: "wool socks"},
		{ID: "det-note", AccountID: "acc-a", ProfileID: "prof-a", Category: models.DetailCategoryNote, Value: "private"},
	}, nil)
	fx.cr.EXPECT().IsShared(ctx, "prof-a", "user-b", models.SharingMedical).Return(true, nil)
	fx.cr.EXPECT().IsShared(ctx, "prof-a", "user-b", models.SharingGiftIdea).Return(false, nil)

	var mirroredDetail models.ProfileDetail
	fx.pr.EXPECT().SaveDetail(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.ProfileDetail) error {
			mirroredDetail = d
			return nil
		})
	fx.cr.EXPECT().SaveMapping(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.DetailSyncMapping) error {
			assert.Equal(t, "det-med", m.SourceDetailID)
			assert.Equal(t, mirroredDetail.ID, m.SyncedDetailID)
			return nil
		})

	// invitee has nothing to share back yet
	fx.pr.EXPECT().ListDetails(ctx, "prof-b").Return(nil, nil)

	connection, err := fx.svc.AcceptInvitation(ctx, models.AcceptInvitationRequest{
		InviterAccountID: "acc-a",
		InviterUserID:    "user-a",
		InviteeAccountID: "acc-b",
		InviteeUserID:    "user-b",
		Preferences:      map[string]bool{models.SharingGiftIdea: false},
	})
	require.NoError(t, err)

	assert.Equal(t, models.ConnectionActive, connection.Status)
	assert.Equal(t, created.ID, connection.ID)
	assert.Equal(t, "prof-a", connection.SideA.SourceProfileID)
	assert.Equal(t, "prof-b", connection.SideB.SourceProfileID)

	require.Len(t, copies, 2)
	copyOfInviter, copyOfInvitee := copies[0], copies[1]

	assert.Equal(t, "acc-b", copyOfInviter.AccountID)
	require.NotNil(t, copyOfInviter.SourceUserID)
	assert.Equal(t, "user-a", *copyOfInviter.SourceUserID)
	assert.Equal(t, "Agnes", copyOfInviter.Name)
	require.NotNil(t, copyOfInviter.Address) // core fields default-open
	assert.False(t, copyOfInviter.IsPrimary)
	assert.Equal(t, connection.SideB.SyncedProfileID, copyOfInviter.ID)

	assert.Equal(t, "acc-a", copyOfInvitee.AccountID)
	assert.Equal(t, "Bram", copyOfInvitee.Name)
	assert.Equal(t, connection.SideA.SyncedProfileID, copyOfInvitee.ID)

	assert.Equal(t, copyOfInviter.ID, mirroredDetail.ProfileID)
	assert.Equal(t, "penicillin", mirroredDetail.Value)
}

func TestAcceptInvitation_NoPrimaryProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newConnectionFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectRollback()

	fx.pr.EXPECT().GetPrimaryProfile(ctx, "user-a").Return(models.Profile{}, store.ErrNotFound)

	_, err := fx.svc.AcceptInvitation(ctx, models.AcceptInvitationRequest{
		InviterAccountID: "acc-a",
		InviterUserID:    "user-a",
		InviteeAccountID: "acc-b",
		InviteeUserID:    "user-b",
	})
	assert.ErrorIs(t, err, ErrNoPrimaryProfile)
}

func TestAcceptInvitation_SelfConnectionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newConnectionFixture(t, ctrl)

	_, err := fx.svc.AcceptInvitation(context.Background(), models.AcceptInvitationRequest{
		InviterAccountID: "acc-a",
		InviterUserID:    "user-a",
		InviteeAccountID: "acc-a",
		InviteeUserID:    "user-a",
	})
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

// ── Sever ───────────────────────────────────────────────────────────────────

func TestSever_DetachesBothCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newConnectionFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectCommit()

	fx.cr.EXPECT().GetConnection(ctx, "conn-1").Return(activeConnection(), nil)
	fx.cr.EXPECT().SeverConnection(ctx, "conn-1", gomock.AssignableToTypeOf(time.Time{})).Return(nil)
	fx.pr.EXPECT().MarkLocalOnly(ctx, "copy-b").Return(nil)
	fx.pr.EXPECT().MarkLocalOnly(ctx, "copy-a").Return(nil)
	fx.cr.EXPECT().ListMappingsByConnection(ctx, "conn-1").
		Return([]models.DetailSyncMapping{{ConnectionID: "conn-1", SourceDetailID: "det-1", SyncedDetailID: "det-copy-9"}}, nil)
	fx.cr.EXPECT().DeleteMapping(ctx, "conn-1", "det-1").Return(nil)

	require.NoError(t, fx.svc.Sever(ctx, "conn-1", "user-a"))
}

func TestSever_NotParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newConnectionFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectRollback()

	fx.cr.EXPECT().GetConnection(ctx, "conn-1").Return(activeConnection(), nil)

	err := fx.svc.Sever(ctx, "conn-1", "user-stranger")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestSever_AlreadySevered(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newConnectionFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectRollback()

	severed := activeConnection()
	severed.Status = models.ConnectionSevered
	at := time.Now()
	severed.SeveredAt = &at

	fx.cr.EXPECT().GetConnection(ctx, "conn-1").Return(severed, nil)

	err := fx.svc.Sever(ctx, "conn-1", "user-a")
	assert.ErrorIs(t, err, ErrInvalidConnectionState)
}

func TestSever_UnknownConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newConnectionFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectRollback()

	fx.cr.EXPECT().GetConnection(ctx, "ghost").Return(models.SyncConnection{}, store.ErrNotFound)

	err := fx.svc.Sever(ctx, "ghost", "user-a")
	assert.ErrorIs(t, err, ErrNotFound)
}
