package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kinkeeper-app/kinkeeper/internal/config"
	"github.com/kinkeeper-app/kinkeeper/internal/crypto"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/mock"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	sqlm     sqlmock.Sqlmock
	accounts *mock.MockAccountRepository
	profiles *mock.MockProfileRepository
	svc      AuthService
}

func newAuthFixture(t *testing.T, ctrl *gomock.Controller) *authFixture {
	t.Helper()

	conn, sqlm, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	fx := &authFixture{
		sqlm:     sqlm,
		accounts: mock.NewMockAccountRepository(ctrl),
		profiles: mock.NewMockProfileRepository(ctrl),
	}
	fx.accounts.EXPECT().WithTx(gomock.Any()).Return(fx.accounts).AnyTimes()
	fx.profiles.EXPECT().WithTx(gomock.Any()).Return(fx.profiles).AnyTimes()

	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "kinkeeper-test",
		TokenDuration: time.Hour,
	}
	repos := &store.Repositories{Accounts: fx.accounts, Profiles: fx.profiles}
	fx.svc = NewAuthService(store.NewDB(conn, logger.Nop()), repos, cfg, logger.Nop())
	return fx
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_CreatesAccountAndPrimaryProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newAuthFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectCommit()

	var created models.Account
	fx.accounts.EXPECT().
		CreateAccount(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, account models.Account) (models.Account, error) {
			created = account
			created.CreatedAt = time.Now()
			return created, nil
		})

	var primary models.Profile
	fx.profiles.EXPECT().
		SaveProfile(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, profile models.Profile) error {
			primary = profile
			return nil
		})

	resp, err := fx.svc.Register(ctx, models.RegisterRequest{
		Email:    "ida@example.com",
		Name:     "Ida",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.UserID)
	assert.NotEqual(t, "correct horse", created.PasswordHash)

	assert.True(t, primary.IsPrimary)
	assert.Equal(t, created.ID, primary.AccountID)
	assert.Equal(t, created.UserID, primary.UserID)
	assert.Equal(t, "Ida", primary.Name)

	assert.Equal(t, created.ID, resp.AccountID)
	assert.NotEmpty(t, resp.Token)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newAuthFixture(t, ctrl)
	ctx := context.Background()

	fx.sqlm.ExpectBegin()
	fx.sqlm.ExpectRollback()

	fx.accounts.EXPECT().
		CreateAccount(ctx, gomock.Any()).
		Return(models.Account{}, store.ErrDuplicate)

	_, err := fx.svc.Register(ctx, models.RegisterRequest{
		Email:    "taken@example.com",
		Name:     "Ida",
		Password: "pw",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newAuthFixture(t, ctrl)

	_, err := fx.svc.Register(context.Background(), models.RegisterRequest{Email: "ida@example.com"})
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_IssuesValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newAuthFixture(t, ctrl)
	ctx := context.Background()

	hash, err := crypto.NewPasswordHasher().Hash("correct horse")
	require.NoError(t, err)

	account := models.Account{
		ID:           "acc-1",
		UserID:       "user-1",
		Email:        "ida@example.com",
		PasswordHash: hash,
	}
	fx.accounts.EXPECT().
		FindAccountByEmail(ctx, "ida@example.com").
		Return(account, nil)

	resp, err := fx.svc.Login(ctx, models.LoginRequest{Email: "ida@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "acc-1", resp.AccountID)
	assert.Equal(t, "user-1", resp.UserID)

	token, err := fx.svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", token.UserID)
	assert.Equal(t, "acc-1", token.AccountID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newAuthFixture(t, ctrl)
	ctx := context.Background()

	hash, err := crypto.NewPasswordHasher().Hash("correct horse")
	require.NoError(t, err)

	fx.accounts.EXPECT().
		FindAccountByEmail(ctx, "ida@example.com").
		Return(models.Account{ID: "acc-1", PasswordHash: hash}, nil)

	_, err = fx.svc.Login(ctx, models.LoginRequest{Email: "ida@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := newAuthFixture(t, ctrl)
	ctx := context.Background()

	fx.accounts.EXPECT().
		FindAccountByEmail(ctx, "ghost@example.com").
		Return(models.Account{}, store.ErrNotFound)

	_, err := fx.svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}
